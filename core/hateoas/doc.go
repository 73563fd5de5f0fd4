// Package hateoas builds the "_links" objects attached to API resources and pages.
package hateoas
