package model

import "time"

// Answer belongs to exactly one question and owns its vote sets for its
// lifetime.
type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"questionId"`
	AuthorID   int64     `json:"authorId"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	Author     *User     `json:"author,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateAnswerRequest is the API request body for posting an answer.
type CreateAnswerRequest struct {
	QuestionID int64  `json:"questionId"`
	AuthorID   int64  `json:"authorId"`
	Content    string `json:"content"`
}

// AnswerListResponse is a question's answer listing.
type AnswerListResponse struct {
	Answers []Answer `json:"answers"`
	IsNext  bool     `json:"isNext"`
}

// Answer listing sorts.
const (
	AnswerSortHighestUpvotes = "highest_upvotes"
	AnswerSortLowestUpvotes  = "lowest_upvotes"
	AnswerSortRecent         = "recent"
	AnswerSortOld            = "old"
)
