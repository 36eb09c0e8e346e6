package models

// User is an operator allowed to trigger refreshes and read the refresh log.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never exposed
}
