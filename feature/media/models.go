package media

import "social-network/core/hateoas"

// Prefix is the object key prefix of uploaded media.
const Prefix = "media/"

// Object describes an uploaded file.
type Object struct {
	Key         string        `json:"key"`
	URL         string        `json:"url"`
	Size        int64         `json:"size"`
	ContentType string        `json:"contentType"`
	Links       hateoas.Links `json:"_links"`
}
