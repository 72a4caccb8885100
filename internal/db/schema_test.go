package db

import (
	"strings"
	"testing"
)

// Every foreign key pointing at users must cascade, so deleting a user who
// has answered, voted on, saved or viewed other people's content succeeds
// instead of tripping a constraint.
func TestSchemaUserReferencesCascade(t *testing.T) {
	for _, line := range strings.Split(schemaSQL, "\n") {
		if !strings.Contains(line, "REFERENCES users(id)") {
			continue
		}
		if !strings.Contains(line, "ON DELETE CASCADE") {
			t.Errorf("user reference without cascade: %s", strings.TrimSpace(line))
		}
	}
}

func TestSchemaVoteTablesSingleRowPerVoter(t *testing.T) {
	for _, pk := range []string{
		"PRIMARY KEY (question_id, user_id)",
		"PRIMARY KEY (answer_id, user_id)",
	} {
		if !strings.Contains(schemaSQL, pk) {
			t.Errorf("missing %q: vote sets must hold one row per (item, voter)", pk)
		}
	}
}
