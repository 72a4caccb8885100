package model

import "time"

// User represents a community member. Reputation is a denormalized running
// counter mutated only through the reputation service, never recomputed
// from vote history.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	Reputation int       `json:"reputation"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// CreateUserRequest is the API request body for registering a user record.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserInfoResponse is the API response for a profile page lookup.
type UserInfoResponse struct {
	User           *User       `json:"user"`
	TotalQuestions int         `json:"totalQuestions"`
	TotalAnswers   int         `json:"totalAnswers"`
	Reputation     int         `json:"reputation"`
	BadgeCounts    BadgeCounts `json:"badgeCounts"`
}

// BadgeCounts holds how many badges of each tier a user has earned.
type BadgeCounts struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

// SaveQuestionRequest is the API request body for toggling a saved question.
type SaveQuestionRequest struct {
	QuestionID int64 `json:"questionId"`
	UserID     int64 `json:"userId"`
}

// UserListResponse is a paginated list of users.
type UserListResponse struct {
	Users  []User `json:"users"`
	IsNext bool   `json:"isNext"`
}

// User listing filters.
const (
	UserFilterNew             = "new_users"
	UserFilterOld             = "old_users"
	UserFilterTopContributors = "top_contributors"
)

// Saved-question listing filters.
const (
	SavedFilterMostRecent   = "most_recent"
	SavedFilterOldest       = "oldest"
	SavedFilterMostVoted    = "most_voted"
	SavedFilterMostViewed   = "most_viewed"
	SavedFilterMostAnswered = "most_answered"
)
