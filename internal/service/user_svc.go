package service

import (
	"context"

	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
	"github.com/pulsar1812/code-hunt/pkg/pagination"
)

// badgeLevels are the thresholds for one badge criterion, in ascending
// tier order.
type badgeLevels struct {
	bronze int
	silver int
	gold   int
}

var badgeCriteria = map[string]badgeLevels{
	"question_count":   {bronze: 10, silver: 50, gold: 100},
	"answer_count":     {bronze: 10, silver: 50, gold: 100},
	"question_upvotes": {bronze: 10, silver: 50, gold: 100},
	"answer_upvotes":   {bronze: 10, silver: 50, gold: 100},
	"total_views":      {bronze: 1000, silver: 10000, gold: 100000},
}

// assignBadges tallies badges across criteria: each reached threshold earns
// one badge of that tier.
func assignBadges(counts map[string]int) model.BadgeCounts {
	var badges model.BadgeCounts
	for criterion, count := range counts {
		levels, ok := badgeCriteria[criterion]
		if !ok {
			continue
		}
		if count >= levels.bronze {
			badges.Bronze++
		}
		if count >= levels.silver {
			badges.Silver++
		}
		if count >= levels.gold {
			badges.Gold++
		}
	}
	return badges
}

type UserService struct {
	users     *repository.UserRepo
	questions *repository.QuestionRepo
	answers   *repository.AnswerRepo
}

func NewUserService(users *repository.UserRepo, questions *repository.QuestionRepo, answers *repository.AnswerRepo) *UserService {
	return &UserService{users: users, questions: questions, answers: answers}
}

// Create registers a user record. Reputation starts at zero.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	return s.users.Create(ctx, req)
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Delete removes a user and their authored content.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// List returns a paginated user directory.
func (s *UserService) List(ctx context.Context, search, filter string, page, pageSize int) (*model.UserListResponse, error) {
	skip := pagination.Offset(page, pageSize)

	users, err := s.users.List(ctx, search, filter, skip, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.users.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	return &model.UserListResponse{
		Users:  users,
		IsNext: pagination.HasNextCount(total, skip, len(users)),
	}, nil
}

// ToggleSave flips a question's membership in the user's saved set and
// reports the new state.
func (s *UserService) ToggleSave(ctx context.Context, userID, questionID int64) (saved bool, err error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return false, err
	}
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		return false, err
	}

	isSaved, err := s.users.IsSaved(ctx, userID, questionID)
	if err != nil {
		return false, err
	}

	if isSaved {
		return false, s.users.RemoveSaved(ctx, userID, questionID)
	}
	return true, s.users.AddSaved(ctx, userID, questionID)
}

// SavedQuestions lists the user's saved set with overfetch pagination: the
// repo returned up to pageSize+1 rows and the extra one is trimmed here.
func (s *UserService) SavedQuestions(ctx context.Context, userID int64, search, filter string, page, pageSize int) (*model.QuestionListResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	skip := pagination.Offset(page, pageSize)
	questions, err := s.questions.Saved(ctx, userID, search, filter, skip, pageSize)
	if err != nil {
		return nil, err
	}

	isNext := pagination.HasNextOverfetch(len(questions), pageSize)
	questions = pagination.Trim(questions, pageSize)

	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, err
	}

	return &model.QuestionListResponse{Questions: questions, IsNext: isNext}, nil
}

// Info assembles a profile page: totals plus badge counts.
func (s *UserService) Info(ctx context.Context, userID int64) (*model.UserInfoResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalQuestions, err := s.questions.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalAnswers, err := s.answers.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	questionUpvotes, err := s.questions.UpvotesReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	answerUpvotes, err := s.answers.UpvotesReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.questions.ViewsTotal(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges := assignBadges(map[string]int{
		"question_count":   totalQuestions,
		"answer_count":     totalAnswers,
		"question_upvotes": questionUpvotes,
		"answer_upvotes":   answerUpvotes,
		"total_views":      int(totalViews),
	})

	return &model.UserInfoResponse{
		User:           u,
		TotalQuestions: totalQuestions,
		TotalAnswers:   totalAnswers,
		Reputation:     u.Reputation,
		BadgeCounts:    badges,
	}, nil
}

// Questions lists a user's authored questions with count-based pagination.
func (s *UserService) Questions(ctx context.Context, userID int64, page, pageSize int) (*model.QuestionListResponse, error) {
	skip := pagination.Offset(page, pageSize)

	total, err := s.questions.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ByAuthor(ctx, userID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	if err := s.questions.Populate(ctx, questions); err != nil {
		return nil, err
	}

	return &model.QuestionListResponse{
		Questions: questions,
		IsNext:    pagination.HasNextCount(total, skip, len(questions)),
	}, nil
}

// Answers lists a user's authored answers with count-based pagination.
func (s *UserService) Answers(ctx context.Context, userID int64, page, pageSize int) (*model.AnswerListResponse, error) {
	skip := pagination.Offset(page, pageSize)

	total, err := s.answers.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answers.ByAuthor(ctx, userID, skip, pageSize)
	if err != nil {
		return nil, err
	}
	if err := s.answers.PopulateAuthors(ctx, answers); err != nil {
		return nil, err
	}

	return &model.AnswerListResponse{
		Answers: answers,
		IsNext:  pagination.HasNextCount(total, skip, len(answers)),
	}, nil
}

// Stats returns aggregate platform statistics.
func (s *UserService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	return s.users.Stats(ctx)
}
