package models

import "time"

type Post struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
}

// PostWithAuthor is a Post joined with the author's public profile fields,
// used by the post listing.
type PostWithAuthor struct {
	Post
	Username      string
	ProfilePicURL string
}
