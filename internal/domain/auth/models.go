package auth

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserContext is the authenticated identity attached to a request.
type UserContext struct {
	UserID     string
	EmployeeID string
	Role       string
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
	UserID    string    `json:"userId"`
}
