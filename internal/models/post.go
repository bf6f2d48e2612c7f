package models

import "time"

// Post represents a feed entry. Username is a denormalized copy of the
// author's name at creation time and is not kept in sync afterwards, and
// UserID is never validated against the user list after creation.
type Post struct {
	ID        uint      `json:"id" yaml:"id"`
	UserID    uint      `json:"user_id" yaml:"user_id"`
	Username  string    `json:"username" yaml:"username"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// HumanTime renders the post timestamp the way the feed displays it.
func (p *Post) HumanTime() string {
	return p.Timestamp.Format("2006-01-02 15:04:05")
}
