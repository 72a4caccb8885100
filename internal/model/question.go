package model

import "time"

// Question is the primary content item. Vote membership lives in the
// question_votes table, surfaced here as counts plus the caller's own state.
type Question struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Views     int64     `json:"views"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Answers   int       `json:"answers"`
	Tags      []Tag     `json:"tags,omitempty"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateQuestionRequest is the API request body for asking a question.
// Tags are raw names; the service upserts them case-insensitively.
type CreateQuestionRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	AuthorID int64    `json:"authorId"`
}

// EditQuestionRequest is the API request body for editing title/content.
// Tags are immutable after creation, matching product behavior.
type EditQuestionRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// QuestionListResponse is a paginated question listing.
type QuestionListResponse struct {
	Questions []Question `json:"questions"`
	IsNext    bool       `json:"isNext"`
}

// Question listing filters.
const (
	QuestionFilterNewest     = "newest"
	QuestionFilterFrequent   = "frequent"
	QuestionFilterUnanswered = "unanswered"
)
