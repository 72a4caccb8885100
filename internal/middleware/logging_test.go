package middleware

import "testing"

func TestSanitizePath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/questions/123", "/api/questions/:id"},
		{"/api/questions/123/vote", "/api/questions/:id/vote"},
		{"/api/answers/9/vote", "/api/answers/:id/vote"},
		{"/api/users/42/saved", "/api/users/:id/saved"},
		{"/api/tags/7/questions", "/api/tags/:id/questions"},
		{"/api/questions", "/api/questions"},
		{"/api/questions/hot", "/api/questions/hot"},
		{"/api/questions/recommended", "/api/questions/recommended"},
		{"/api/tags/popular", "/api/tags/popular"},
		{"/health/ready", "/health/ready"},
		{"/metrics", "/metrics"},
	}

	for _, tc := range cases {
		if got := sanitizePath(tc.path); got != tc.want {
			t.Errorf("sanitizePath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
