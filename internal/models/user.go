package models

import "time"

// User represents a registered account in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Blogs        []BlogRef `json:"blogs"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BlogRef is the reduced blog shape embedded in user listings.
type BlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
}
