package models

import "strings"

// User is an immutable snapshot of the authenticated profile as returned by
// the backend. A new User always replaces the previous one as a whole; the
// client never merges partial updates into an existing record.
type User struct {
	// ID is the backend identifier of the user.
	ID string `json:"id"`

	// Email is the login e-mail of the user.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// FullName is optional; the backend may compute it or omit it.
	FullName string `json:"fullName,omitempty"`

	ProfileImage string   `json:"profileImage,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Location     string   `json:"location,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Interests    []string `json:"interests,omitempty"`
}

// DisplayName returns FullName when present, otherwise the first and last
// name joined, falling back to Email.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Email
}

// AuthRequest carries the credentials sent to the login and signup
// endpoints. FirstName and LastName are only used by signup.
type AuthRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// AuthResponse is the body returned by POST /auth/login and /auth/signup.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// Complete reports whether the response carries everything needed to open a
// session: a success flag, a non-empty token and a user record.
func (r AuthResponse) Complete() bool {
	return r.Success && strings.TrimSpace(r.Token) != "" && r.User != nil
}

// Credentials is the durable pair kept by the credential store. Token and
// User are always written and cleared together.
type Credentials struct {
	Token string
	User  User
}
