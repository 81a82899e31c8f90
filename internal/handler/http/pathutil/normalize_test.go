package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/subjects/123", "/api/subjects/:id"},
		{"/api/subjects/123/", "/api/subjects/:id"},
		{"/api/subjects/123?fields=all", "/api/subjects/:id"},
		{"/api/findings/42", "/api/findings/:id"},
		{"/api/contacts/7", "/api/contacts/:id"},
		{"/api/monitor/twitter/3", "/api/monitor/twitter/:id"},
		{"/api/monitor/news/9", "/api/monitor/news/:id"},
		{"/api/subjects", "/api/subjects"},
		{"/api/search?name=Ali%20Rezaei", "/api/search"},
		{"/api/stats", "/api/stats"},
		{"/healthz", "/healthz"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
