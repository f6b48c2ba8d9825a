package domain

import "time"

// Comment is a user's remark on a news article.
type Comment struct {
	ID           int64
	Content      string
	AuthorID     int64
	NewsID       int64
	CreationDate time.Time
	LastUpdate   time.Time
}

type CommentPatch struct {
	Content *string
	NewsID  *int64
}

// Apply copies the present fields onto c and advances LastUpdate.
func (p CommentPatch) Apply(c *Comment, now time.Time) {
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.NewsID != nil {
		c.NewsID = *p.NewsID
	}
	c.LastUpdate = Advance(c.LastUpdate, now)
}
