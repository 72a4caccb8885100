package service

import (
	"testing"

	"github.com/pulsar1812/code-hunt/internal/model"
)

func TestVoteDelta_PointTable(t *testing.T) {
	cases := []struct {
		name       string
		itemType   string
		direction  string
		wantVoter  int
		wantAuthor int
	}{
		{"question upvote", model.ContentQuestion, model.VoteUp, 1, 10},
		{"question downvote", model.ContentQuestion, model.VoteDown, -2, -10},
		{"answer upvote", model.ContentAnswer, model.VoteUp, 2, 10},
		{"answer downvote", model.ContentAnswer, model.VoteDown, -2, -10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			voter, author := voteDelta(tc.itemType, tc.direction, false)
			if voter != tc.wantVoter || author != tc.wantAuthor {
				t.Errorf("voteDelta(%s, %s, false) = (%d, %d), want (%d, %d)",
					tc.itemType, tc.direction, voter, author, tc.wantVoter, tc.wantAuthor)
			}
		})
	}
}

func TestVoteDelta_RevokeFlipsSign(t *testing.T) {
	for _, itemType := range []string{model.ContentQuestion, model.ContentAnswer} {
		for _, direction := range []string{model.VoteUp, model.VoteDown} {
			applyVoter, applyAuthor := voteDelta(itemType, direction, false)
			revokeVoter, revokeAuthor := voteDelta(itemType, direction, true)

			if applyVoter+revokeVoter != 0 {
				t.Errorf("%s/%s: voter apply %d + revoke %d != 0",
					itemType, direction, applyVoter, revokeVoter)
			}
			if applyAuthor+revokeAuthor != 0 {
				t.Errorf("%s/%s: author apply %d + revoke %d != 0",
					itemType, direction, applyAuthor, revokeAuthor)
			}
		}
	}
}

func TestCreationAwards(t *testing.T) {
	if AskQuestionAward != 5 {
		t.Errorf("AskQuestionAward = %d, want 5", AskQuestionAward)
	}
	if PostAnswerAward != 10 {
		t.Errorf("PostAnswerAward = %d, want 10", PostAnswerAward)
	}
}
