package model

import "time"

// Interaction actions.
const (
	ActionAskQuestion = "ask_question"
	ActionAnswer      = "answer"
	ActionView        = "view"
)

// Interaction is an immutable journal row. The tag set is captured at the
// time of the action and feeds the recommendation engine; rows are never
// updated, only cascade-deleted with their content.
type Interaction struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Action     string    `json:"action"`
	QuestionID int64     `json:"questionId"`
	AnswerID   *int64    `json:"answerId,omitempty"`
	TagIDs     []int64   `json:"tagIds"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ViewRequest is the API request body for recording a question view.
// UserID is nil for anonymous viewers: the counter still increments, the
// journal append is skipped.
type ViewRequest struct {
	QuestionID int64  `json:"questionId"`
	UserID     *int64 `json:"userId,omitempty"`
}
