package models

import "time"

type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Bio           string
	ProfilePicURL string
	CreatedAt     time.Time
}
