package service

import (
	"testing"
)

func TestAffinityTags_Dedup(t *testing.T) {
	tagSets := [][]int64{
		{1, 2, 3},
		{2, 3, 4},
		{4, 5},
	}

	got := affinityTags(tagSets)

	want := []int64{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("affinityTags returned %d tags, want %d: %v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("affinityTags[%d] = %d, want %d", i, got[i], id)
		}
	}
}

func TestAffinityTags_Empty(t *testing.T) {
	if got := affinityTags(nil); len(got) != 0 {
		t.Errorf("affinityTags(nil) = %v, want empty", got)
	}
	if got := affinityTags([][]int64{{}, {}}); len(got) != 0 {
		t.Errorf("affinityTags of empty sets = %v, want empty", got)
	}
}

func TestAffinityTags_SingleRowRepeats(t *testing.T) {
	got := affinityTags([][]int64{{7, 7, 7}})
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("affinityTags([[7 7 7]]) = %v, want [7]", got)
	}
}
