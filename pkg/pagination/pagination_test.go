package pagination

import "testing"

func TestHasNextCount(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		skipped  int
		returned int
		want     bool
	}{
		{"more pages remain", 25, 0, 10, true},
		{"exact boundary", 20, 10, 10, false},
		{"last short page", 15, 10, 5, false},
		{"empty result", 0, 0, 0, false},
		{"single full page", 10, 0, 10, false},
		{"mid stream", 100, 40, 20, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasNextCount(tc.total, tc.skipped, tc.returned); got != tc.want {
				t.Errorf("HasNextCount(%d, %d, %d) = %v, want %v",
					tc.total, tc.skipped, tc.returned, got, tc.want)
			}
		})
	}
}

func TestHasNextOverfetch(t *testing.T) {
	if !HasNextOverfetch(11, 10) {
		t.Error("pageSize+1 rows should report a next page")
	}
	if HasNextOverfetch(10, 10) {
		t.Error("exactly pageSize rows should not report a next page")
	}
	if HasNextOverfetch(3, 10) {
		t.Error("a short page should not report a next page")
	}
	if HasNextOverfetch(0, 10) {
		t.Error("an empty page should not report a next page")
	}
}

func TestTrim(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	trimmed := Trim(items, 4)
	if len(trimmed) != 4 {
		t.Errorf("Trim to 4 returned %d items", len(trimmed))
	}

	same := Trim(items, 5)
	if len(same) != 5 {
		t.Errorf("Trim at exact size returned %d items", len(same))
	}

	short := Trim(items[:2], 10)
	if len(short) != 2 {
		t.Errorf("Trim of short slice returned %d items", len(short))
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(1, 20); got != 0 {
		t.Errorf("Offset(1, 20) = %d, want 0", got)
	}
	if got := Offset(3, 20); got != 40 {
		t.Errorf("Offset(3, 20) = %d, want 40", got)
	}
	if got := Offset(0, 20); got != 0 {
		t.Errorf("Offset(0, 20) = %d, want 0 (clamped)", got)
	}
	if got := Offset(-5, 20); got != 0 {
		t.Errorf("Offset(-5, 20) = %d, want 0 (clamped)", got)
	}
}

// Both strategies must agree on the same underlying window. Simulate a
// dataset of N rows paged both ways and compare the verdicts.
func TestStrategiesAgree(t *testing.T) {
	const pageSize = 10

	for total := 0; total <= 35; total++ {
		for page := 1; page <= 4; page++ {
			skip := Offset(page, pageSize)

			// count-based: fetch up to pageSize rows
			returned := total - skip
			if returned < 0 {
				returned = 0
			}
			if returned > pageSize {
				returned = pageSize
			}
			countVerdict := HasNextCount(total, skip, returned)

			// overfetch-based: fetch up to pageSize+1 rows
			overReturned := total - skip
			if overReturned < 0 {
				overReturned = 0
			}
			if overReturned > pageSize+1 {
				overReturned = pageSize + 1
			}
			overVerdict := HasNextOverfetch(overReturned, pageSize)

			if countVerdict != overVerdict {
				t.Errorf("total=%d page=%d: count strategy says %v, overfetch says %v",
					total, page, countVerdict, overVerdict)
			}
		}
	}
}
