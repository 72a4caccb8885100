package repository

import (
	"testing"

	"github.com/pulsar1812/code-hunt/internal/model"
)

func TestAttachAuthors(t *testing.T) {
	answers := []model.Answer{
		{ID: 1, AuthorID: 10},
		{ID: 2, AuthorID: 20},
		{ID: 3, AuthorID: 10},
		{ID: 4, AuthorID: 99},
	}
	authors := map[int64]*model.User{
		10: {ID: 10, Name: "alice"},
		20: {ID: 20, Name: "bob"},
	}

	attachAuthors(answers, authors)

	if answers[0].Author == nil || answers[0].Author.Name != "alice" {
		t.Errorf("answer 1 author = %+v, want alice", answers[0].Author)
	}
	if answers[1].Author == nil || answers[1].Author.Name != "bob" {
		t.Errorf("answer 2 author = %+v, want bob", answers[1].Author)
	}
	if answers[2].Author != answers[0].Author {
		t.Error("answers by the same author should share the record")
	}
	if answers[3].Author != nil {
		t.Errorf("unknown author should stay nil, got %+v", answers[3].Author)
	}
}
