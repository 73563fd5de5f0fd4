package users

import (
	"time"

	"social-network/core/hateoas"
)

// Title is the honorific shown before a user's name.
type Title string

const (
	TitleNone Title = ""
	TitleMr   Title = "mr"
	TitleMiss Title = "miss"
	TitleDr   Title = "dr"
)

// DefaultPicture is assigned when a user is created without a picture.
const DefaultPicture = "https://randomuser.me/api/portraits/lego/1.jpg"

// Sortable fields of the user list.
const (
	SortRegisterDate = "registerDate"
	SortFirstName    = "firstName"
	SortLastName     = "lastName"
)

// SortFields lists the accepted sort_by values, default first.
var SortFields = []string{SortRegisterDate, SortFirstName, SortLastName}

// Location is a postal address with a UTC offset.
type Location struct {
	Street   string `json:"street" bson:"street"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Country  string `json:"country" bson:"country"`
	Timezone string `json:"timezone" bson:"timezone"`
}

// User is a stored user.
type User struct {
	ID           string
	Title        Title
	FirstName    string
	LastName     string
	Email        string
	DateOfBirth  *time.Time
	RegisterDate time.Time
	Phone        *string
	Picture      string
	Location     *Location
}

// Preview is the short form of a user embedded in lists, posts and comments.
type Preview struct {
	ID        string        `json:"id"`
	Title     Title         `json:"title"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Picture   string        `json:"picture"`
	Links     hateoas.Links `json:"_links,omitempty"`
}

// Preview returns the short form of u.
func (u User) Preview() Preview {
	return Preview{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

// View is the full user representation with localized dates.
type View struct {
	ID           string        `json:"id"`
	Title        Title         `json:"title"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	DateOfBirth  *string       `json:"dateOfBirth"`
	RegisterDate string        `json:"registerDate"`
	Phone        *string       `json:"phone"`
	Picture      string        `json:"picture"`
	Location     *Location     `json:"location"`
	Links        hateoas.Links `json:"_links"`
}

// CreateInput is the body of POST /users.
type CreateInput struct {
	Title       Title     `json:"title"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth"`
	Phone       *string   `json:"phone"`
	Picture     *string   `json:"picture"`
	Location    *Location `json:"location"`
}

// UpdateInput is the body of PUT /users/:id. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *Title    `json:"title"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Phone       *string   `json:"phone"`
	Picture     *string   `json:"picture"`
	Location    *Location `json:"location"`
}

// Changes is a validated partial update.
type Changes struct {
	Title       *Title
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Phone       *string
	Picture     *string
	Location    *Location
}

// Empty reports whether nothing would change.
func (c Changes) Empty() bool {
	return c.Title == nil && c.FirstName == nil && c.LastName == nil && c.DateOfBirth == nil &&
		c.Phone == nil && c.Picture == nil && c.Location == nil
}

// Apply copies the set fields onto u.
func (c Changes) Apply(u *User) {
	if c.Title != nil {
		u.Title = *c.Title
	}
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.DateOfBirth != nil {
		u.DateOfBirth = c.DateOfBirth
	}
	if c.Phone != nil {
		u.Phone = c.Phone
	}
	if c.Picture != nil {
		u.Picture = *c.Picture
	}
	if c.Location != nil {
		u.Location = c.Location
	}
}

// Filter narrows the user list.
type Filter struct {
	// Title matches exactly when set.
	Title string
	// Search is a case-insensitive substring of first name, last name or email.
	Search string
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
