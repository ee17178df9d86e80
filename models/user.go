package models

// User is a record of the user directory served by GET /api/users.
//
// The JSON layout matches the directory file one to one, so a record read
// from the directory, the durable cache or the cookie decodes into the same
// value.
type User struct {
	// ID is the numeric identity of the user.
	ID int64 `json:"id"`

	// Name and Surname are display values shown in the UI.
	Name    string `json:"name"`
	Surname string `json:"surname"`

	// Status and DateCreated are optional descriptive fields.
	Status      string `json:"status,omitempty"`
	DateCreated string `json:"date_created,omitempty"`

	// Credentials holds the username/passphrase pair in clear text.
	Credentials Credentials `json:"credentials"`

	// Active reports whether the user is allowed to log in.
	Active bool `json:"active"`

	// Created is the creation metadata of the record.
	Created string `json:"created"`

	// Comment is a free-form note kept by directory maintainers.
	Comment string `json:"_comment,omitempty"`
}

// Credentials is the username/passphrase pair used to log in.
// Both fields are compared by exact, case-sensitive equality.
type Credentials struct {
	Username   string `json:"username"`
	Passphrase string `json:"passphrase"`
}

// Matches reports whether c equals other field by field.
func (c Credentials) Matches(other Credentials) bool {
	return c.Username == other.Username && c.Passphrase == other.Passphrase
}

// Redacted returns a copy of u with the passphrase blanked out.
// It is the shape written to the auth cookie.
func (u User) Redacted() User {
	u.Credentials.Passphrase = ""
	return u
}

// DisplayName returns "Name Surname", or whichever part is set.
func (u User) DisplayName() string {
	switch {
	case u.Name == "":
		return u.Surname
	case u.Surname == "":
		return u.Name
	default:
		return u.Name + " " + u.Surname
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
