// Package users implements the user resource of the API.
//
// Users are stored through a Repository with a GORM implementation (sqlite,
// mysql) and a MongoDB implementation. The Service validates input the way the
// public API documents it: names of 2 to 50 characters, a unique email that
// cannot be changed later, a date of birth between 1900-01-01 and now, and an
// optional location whose timezone looks like "+1:00".
//
// Other features only see users through Service.Previews, the batch lookup used
// to embed owners into posts and comments.
package users
