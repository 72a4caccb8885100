package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pulsar1812/code-hunt/internal/apperror"
	"github.com/pulsar1812/code-hunt/internal/model"
	"github.com/pulsar1812/code-hunt/internal/repository"
)

const (
	searchLimitPerType = 2
	searchLimitTyped   = 8
)

var searchableTypes = map[string]bool{
	model.ContentQuestion: true,
	model.ContentAnswer:   true,
	"user":                true,
	"tag":                 true,
}

// SearchService is the global search box backend: case-insensitive
// substring matching per type, capped per type.
type SearchService struct {
	questions *repository.QuestionRepo
	answers   *repository.AnswerRepo
	users     *repository.UserRepo
	tags      *repository.TagRepo
}

func NewSearchService(questions *repository.QuestionRepo, answers *repository.AnswerRepo, users *repository.UserRepo, tags *repository.TagRepo) *SearchService {
	return &SearchService{questions: questions, answers: answers, users: users, tags: tags}
}

// Global searches across all types, or one type when given. Untyped
// searches return a couple of hits per type; typed searches go deeper.
func (s *SearchService) Global(ctx context.Context, query, searchType string) ([]model.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.ValidationFailed("query", "query is required")
	}

	searchType = strings.ToLower(searchType)
	if searchType != "" && !searchableTypes[searchType] {
		return nil, apperror.ValidationFailed("type", "type must be question, answer, user or tag")
	}

	if searchType == "" {
		results := make([]model.SearchResult, 0, 4*searchLimitPerType)
		for _, t := range []string{model.ContentQuestion, model.ContentAnswer, "user", "tag"} {
			typed, err := s.searchType(ctx, query, t, searchLimitPerType)
			if err != nil {
				return nil, err
			}
			results = append(results, typed...)
		}
		return results, nil
	}

	return s.searchType(ctx, query, searchType, searchLimitTyped)
}

func (s *SearchService) searchType(ctx context.Context, query, searchType string, limit int) ([]model.SearchResult, error) {
	var results []model.SearchResult

	switch searchType {
	case model.ContentQuestion:
		questions, err := s.questions.SearchByTitle(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		for _, q := range questions {
			results = append(results, model.SearchResult{ID: q.ID, Type: searchType, Title: q.Title})
		}
	case model.ContentAnswer:
		answers, err := s.answers.SearchByContent(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		for _, a := range answers {
			// Answer hits link to their question.
			results = append(results, model.SearchResult{
				ID:    a.QuestionID,
				Type:  searchType,
				Title: fmt.Sprintf("Answers containing %s", query),
			})
		}
	case "user":
		users, err := s.users.SearchByName(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			results = append(results, model.SearchResult{ID: u.ID, Type: searchType, Title: u.Name})
		}
	case "tag":
		tags, err := s.tags.SearchByName(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			results = append(results, model.SearchResult{ID: t.ID, Type: searchType, Title: t.Name})
		}
	}

	return results, nil
}
