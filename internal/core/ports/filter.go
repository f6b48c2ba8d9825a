package ports

import "math"

// Page is a zero-based page request. Size is always > 0 once validated.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before this page. It saturates
// at math.MaxInt, so a huge page number yields an empty page, never page 0.
func (p Page) Offset() int {
	if p.Number <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// NewsFilter carries the news list predicates. Empty strings mean "no filter".
type NewsFilter struct {
	Page     Page
	Category string // exact match on category name
	Author   string // exact match on author username
}

// CommentFilter selects the comments of one news article.
type CommentFilter struct {
	NewsID int64
}

// AuditQuery selects audit events. Zero values mean "any".
type AuditQuery struct {
	Entity   string
	EntityID int64
	Limit    int
}
