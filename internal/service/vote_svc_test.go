package service

import (
	"testing"

	"github.com/pulsar1812/code-hunt/internal/model"
)

// voteSim mirrors Cast's orchestration in memory: one set mutation followed
// by one reputation call, computed from the same pure functions, so the
// state machine is testable without a database.
type voteSim struct {
	itemType   string
	upvoters   map[int64]bool
	downvoters map[int64]bool
	reputation map[int64]int
	authorID   int64
}

func newVoteSim(itemType string, authorID int64) *voteSim {
	return &voteSim{
		itemType:   itemType,
		upvoters:   make(map[int64]bool),
		downvoters: make(map[int64]bool),
		reputation: make(map[int64]int),
		authorID:   authorID,
	}
}

func (s *voteSim) cast(voterID int64, direction string) {
	hasUp := s.upvoters[voterID]
	hasDown := s.downvoters[voterID]

	switch resolveTransition(hasUp, hasDown, direction) {
	case opAdd:
		if direction == model.VoteUp {
			s.upvoters[voterID] = true
		} else {
			s.downvoters[voterID] = true
		}
	case opRemove:
		delete(s.upvoters, voterID)
		delete(s.downvoters, voterID)
	case opSwitch:
		if direction == model.VoteUp {
			delete(s.downvoters, voterID)
			s.upvoters[voterID] = true
		} else {
			delete(s.upvoters, voterID)
			s.downvoters[voterID] = true
		}
	}

	hadPrior := priorFlag(hasUp, hasDown, direction)
	voterDelta, authorDelta := voteDelta(s.itemType, direction, hadPrior)
	s.reputation[voterID] += voterDelta
	s.reputation[s.authorID] += authorDelta
}

func (s *voteSim) disjoint() bool {
	for id := range s.upvoters {
		if s.downvoters[id] {
			return false
		}
	}
	return true
}

func TestResolveTransition(t *testing.T) {
	cases := []struct {
		name      string
		hasUp     bool
		hasDown   bool
		direction string
		want      voteOp
	}{
		{"none to up", false, false, model.VoteUp, opAdd},
		{"none to down", false, false, model.VoteDown, opAdd},
		{"up toggles off", true, false, model.VoteUp, opRemove},
		{"down toggles off", false, true, model.VoteDown, opRemove},
		{"down switches to up", false, true, model.VoteUp, opSwitch},
		{"up switches to down", true, false, model.VoteDown, opSwitch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveTransition(tc.hasUp, tc.hasDown, tc.direction)
			if got != tc.want {
				t.Errorf("resolveTransition(%v, %v, %s) = %v, want %v",
					tc.hasUp, tc.hasDown, tc.direction, got, tc.want)
			}
		})
	}
}

func TestPriorFlag_TargetDirectionOnly(t *testing.T) {
	// Switching from down to up reads the up flag only: the delta is the
	// plain apply-up delta, the down penalty is not reversed.
	if priorFlag(false, true, model.VoteUp) {
		t.Error("priorFlag(up) should ignore the down flag")
	}
	if !priorFlag(true, false, model.VoteUp) {
		t.Error("priorFlag(up) should report the up flag")
	}
	if priorFlag(true, false, model.VoteDown) {
		t.Error("priorFlag(down) should ignore the up flag")
	}
}

func TestCast_UpvoteThenRevoke_RestoresBaseline(t *testing.T) {
	// User B authors question Q; user A upvotes, then repeats the call.
	const authorB, voterA int64 = 2, 1
	sim := newVoteSim(model.ContentQuestion, authorB)

	sim.cast(voterA, model.VoteUp)

	if !sim.upvoters[voterA] {
		t.Fatal("after first upvote, A should be in upvoters")
	}
	if got := sim.reputation[voterA]; got != 1 {
		t.Errorf("voter reputation = %d, want 1", got)
	}
	if got := sim.reputation[authorB]; got != 10 {
		t.Errorf("author reputation = %d, want 10", got)
	}

	sim.cast(voterA, model.VoteUp)

	if sim.upvoters[voterA] {
		t.Error("second identical call should toggle the upvote off")
	}
	if got := sim.reputation[voterA]; got != 0 {
		t.Errorf("voter reputation after revoke = %d, want 0", got)
	}
	if got := sim.reputation[authorB]; got != 0 {
		t.Errorf("author reputation after revoke = %d, want 0", got)
	}
}

func TestCast_DownThenUp_AsymmetricDelta(t *testing.T) {
	// Switching direction applies the plain apply-up delta on top of the
	// earlier down penalty; the penalty is not separately reversed.
	const authorB, voterA int64 = 2, 1
	sim := newVoteSim(model.ContentQuestion, authorB)

	sim.cast(voterA, model.VoteDown)
	sim.cast(voterA, model.VoteUp)

	if !sim.upvoters[voterA] {
		t.Error("A should end in upvoters")
	}
	if sim.downvoters[voterA] {
		t.Error("A should have left downvoters")
	}
	// down applied: voter -2, author -10; then apply-up: voter +1, author +10.
	if got := sim.reputation[voterA]; got != -1 {
		t.Errorf("voter reputation = %d, want -1", got)
	}
	if got := sim.reputation[authorB]; got != 0 {
		t.Errorf("author reputation = %d, want 0", got)
	}
}

func TestCast_Disjointness(t *testing.T) {
	const author int64 = 99
	sim := newVoteSim(model.ContentAnswer, author)

	sequences := [][]string{
		{model.VoteUp, model.VoteDown, model.VoteUp},
		{model.VoteDown, model.VoteDown, model.VoteUp, model.VoteUp},
		{model.VoteUp, model.VoteUp, model.VoteDown},
	}

	for voter, seq := range sequences {
		voterID := int64(voter + 1)
		for _, dir := range seq {
			sim.cast(voterID, dir)
			if !sim.disjoint() {
				t.Fatalf("voter %d: upvoters and downvoters overlap after %s", voterID, dir)
			}
		}
	}
}

func TestCast_InvalidDirectionRejected(t *testing.T) {
	svc := NewVoteService(nil, nil, nil)
	if _, err := svc.Cast(t.Context(), model.ContentQuestion, 1, 1, "sideways"); err == nil {
		t.Error("expected validation error for bad direction")
	}
	if _, err := svc.Cast(t.Context(), "comment", 1, 1, model.VoteUp); err == nil {
		t.Error("expected validation error for bad item type")
	}
}
