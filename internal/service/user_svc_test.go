package service

import (
	"testing"

	"github.com/pulsar1812/code-hunt/internal/model"
)

func TestAssignBadges(t *testing.T) {
	cases := []struct {
		name   string
		counts map[string]int
		want   model.BadgeCounts
	}{
		{
			name:   "no activity",
			counts: map[string]int{"question_count": 0, "answer_count": 3},
			want:   model.BadgeCounts{},
		},
		{
			name:   "bronze only",
			counts: map[string]int{"question_count": 10},
			want:   model.BadgeCounts{Bronze: 1},
		},
		{
			name:   "gold implies silver and bronze",
			counts: map[string]int{"answer_count": 150},
			want:   model.BadgeCounts{Bronze: 1, Silver: 1, Gold: 1},
		},
		{
			name: "mixed criteria stack",
			counts: map[string]int{
				"question_count": 60,  // bronze + silver
				"answer_upvotes": 12,  // bronze
				"total_views":    500, // below bronze threshold
			},
			want: model.BadgeCounts{Bronze: 2, Silver: 1},
		},
		{
			name:   "views use their own thresholds",
			counts: map[string]int{"total_views": 10000},
			want:   model.BadgeCounts{Bronze: 1, Silver: 1},
		},
		{
			name:   "unknown criterion ignored",
			counts: map[string]int{"comment_count": 9999},
			want:   model.BadgeCounts{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := assignBadges(tc.counts)
			if got != tc.want {
				t.Errorf("assignBadges(%v) = %+v, want %+v", tc.counts, got, tc.want)
			}
		})
	}
}
