// Package model defines domain entities for the application.
package model

import "time"

// User owns an ordered log of exercise entries.
// Usernames are not unique; two users may share a name and remain
// distinct records.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
