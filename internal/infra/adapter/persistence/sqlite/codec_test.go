package sqlite

import (
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	orig := time.Date(2026, 8, 23, 14, 30, 45, 123456789, time.UTC)
	got, err := parseTime(formatTime(orig))
	if err != nil {
		t.Fatalf("parseTime err=%v", err)
	}
	if !got.Equal(orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestFormatTime_lexicographicOrder(t *testing.T) {
	earlier := time.Date(2026, 8, 23, 9, 59, 59, 999999999, time.UTC)
	later := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	if formatTime(earlier) >= formatTime(later) {
		t.Errorf("formatTime not monotonic: %q >= %q", formatTime(earlier), formatTime(later))
	}
}

func TestTagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{"nil becomes empty", nil},
		{"order preserved", []string{"IRGC", "banking"}},
		{"duplicates preserved", []string{"a", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := encodeTags(tt.tags)
			if err != nil {
				t.Fatalf("encodeTags err=%v", err)
			}
			got, err := decodeTags(raw)
			if err != nil {
				t.Fatalf("decodeTags err=%v", err)
			}
			want := tt.tags
			if want == nil {
				want = []string{}
			}
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}
