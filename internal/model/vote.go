package model

// Vote directions.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Content item kinds voting operates on.
const (
	ContentQuestion = "question"
	ContentAnswer   = "answer"
)

// VoteRequest is the API request body for casting a vote. A repeated
// identical vote toggles the prior one off rather than being a no-op.
type VoteRequest struct {
	UserID    int64  `json:"userId"`
	Direction string `json:"direction"`
}

// VoteResult is the API response after a vote transition.
type VoteResult struct {
	Success     bool `json:"success"`
	HasUpvote   bool `json:"hasUpvote"`
	HasDownvote bool `json:"hasDownvote"`
	Upvotes     int  `json:"upvotes"`
	Downvotes   int  `json:"downvotes"`
}

// StatsResponse is the API response for global platform statistics.
type StatsResponse struct {
	TotalQuestions int            `json:"totalQuestions"`
	TotalAnswers   int            `json:"totalAnswers"`
	TotalUsers     int            `json:"totalUsers"`
	TotalTags      int            `json:"totalTags"`
	TotalVotes     int            `json:"totalVotes"`
	TopTags        map[string]int `json:"topTags"`
}

// SearchResult is one entry in a global search response.
type SearchResult struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}
