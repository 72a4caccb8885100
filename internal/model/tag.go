package model

import "time"

// Tag names are unique case-insensitively; the question_tags table is a
// back-reference, not ownership.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Questions int       `json:"questions,omitempty"`
	CreatedAt time.Time `json:"createdOn"`
}

// TagListResponse is a paginated tag listing.
type TagListResponse struct {
	Tags   []Tag `json:"tags"`
	IsNext bool  `json:"isNext"`
}

// Tag listing filters.
const (
	TagFilterPopular = "popular"
	TagFilterRecent  = "recent"
	TagFilterName    = "name"
	TagFilterOld     = "old"
)
