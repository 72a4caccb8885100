package service

import (
	"errors"
	"testing"

	"github.com/pulsar1812/code-hunt/internal/apperror"
)

func TestGlobalSearch_RejectsBadInput(t *testing.T) {
	svc := NewSearchService(nil, nil, nil, nil)

	if _, err := svc.Global(t.Context(), "   ", ""); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("blank query: got %v, want validation error", err)
	}
	if _, err := svc.Global(t.Context(), "golang", "comment"); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("unknown type: got %v, want validation error", err)
	}
}

func TestSearchableTypes(t *testing.T) {
	for _, typ := range []string{"question", "answer", "user", "tag"} {
		if !searchableTypes[typ] {
			t.Errorf("%q should be searchable", typ)
		}
	}
	if searchableTypes["comment"] {
		t.Error("comment should not be searchable")
	}
}
