// Package models defines the data structures exchanged with the MediXpert
// backend. All fields mirror the REST API's JSON contract; server-issued
// timestamps are kept as strings because the client only displays them.
package models

// User is the profile snapshot returned at login time. It is not refreshed
// until the next login and may go stale relative to the backend's record.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// DateJoined is an ISO-8601 timestamp as issued by the server.
	DateJoined string `json:"date_joined"`
}

// Registration is the payload for account creation. Registration never
// issues a session token.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// LoginResult is the successful login response. Token is an opaque credential;
// the client forwards it verbatim and never inspects it.
type LoginResult struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
	Refresh string `json:"refresh"`
}
