package handler

import (
	"testing"

	"github.com/pulsar1812/code-hunt/internal/middleware"
)

func TestDefaultFeed(t *testing.T) {
	cases := []struct {
		name     string
		search   string
		filter   string
		page     int
		pageSize int
		want     bool
	}{
		{"plain first page", "", "", 1, middleware.DefaultPageSize, true},
		{"with search", "golang", "", 1, middleware.DefaultPageSize, false},
		{"with filter", "", "newest", 1, middleware.DefaultPageSize, false},
		{"second page", "", "", 2, middleware.DefaultPageSize, false},
		{"custom page size", "", "", 1, 50, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := defaultFeed(tc.search, tc.filter, tc.page, tc.pageSize); got != tc.want {
				t.Errorf("defaultFeed(%q, %q, %d, %d) = %v, want %v",
					tc.search, tc.filter, tc.page, tc.pageSize, got, tc.want)
			}
		})
	}
}
