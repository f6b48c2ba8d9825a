package domain

import "time"

// News is an article written by a user under one category.
type News struct {
	ID           int64
	Content      string
	AuthorID     int64
	CategoryID   int64
	CreationDate time.Time
	LastUpdate   time.Time
}

// NewsSummary is a list row: the article plus the number of comments on it.
type NewsSummary struct {
	News
	CommentsCount int64
}

// NewsDetail is a single article with all of its comments.
type NewsDetail struct {
	News     News
	Comments []Comment
}

// NewsPatch lists the mergeable news fields. Authorship is immutable.
type NewsPatch struct {
	Content    *string
	CategoryID *int64
}

// Apply copies the present fields onto n and advances LastUpdate.
func (p NewsPatch) Apply(n *News, now time.Time) {
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.CategoryID != nil {
		n.CategoryID = *p.CategoryID
	}
	n.LastUpdate = Advance(n.LastUpdate, now)
}

// Advance returns now, or a microsecond past prev when the clock has not
// moved beyond it. Stored timestamps keep microsecond precision.
func Advance(prev, now time.Time) time.Time {
	now = now.UTC().Truncate(time.Microsecond)
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
