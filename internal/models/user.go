package models

// User is the public identity record exposed to the presentation layer.
// It never carries credentials.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Credential is a stored registration record. It pairs an email with a
// bcrypt password hash and the id assigned at registration. Credentials
// stay inside the identity context and are never exposed.
type Credential struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Name         string `json:"name,omitempty"`
}

// Public returns the user record derived from the credential.
func (c Credential) Public() User {
	return User{ID: c.ID, Email: c.Email, Name: c.Name}
}
