package clockface

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 1, hour, min, 0, 0, time.UTC)
}

func TestTimeText(t *testing.T) {
	tests := []struct {
		name       string
		t          time.Time
		twentyFour bool
		want       string
	}{
		{"24h afternoon", at(15, 4), true, "15:04"},
		{"24h midnight", at(0, 5), true, "00:05"},
		{"12h afternoon", at(15, 4), false, "3:04"},
		{"12h morning", at(9, 7), false, "9:07"},
		{"12h midnight", at(0, 5), false, "12:05"},
		{"12h noon", at(12, 0), false, "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeText(tt.t, tt.twentyFour); got != tt.want {
				t.Errorf("TimeText(%v, %v) = %q, want %q", tt.t, tt.twentyFour, got, tt.want)
			}
		})
	}
}

func TestNextMinute(t *testing.T) {
	base := at(10, 30)

	if d := NextMinute(base.Add(30 * time.Second)); d != 30*time.Second {
		t.Errorf("expected 30s until boundary, got %v", d)
	}
	if d := NextMinute(base); d != time.Minute {
		t.Errorf("expected a full minute on an exact boundary, got %v", d)
	}
	if d := NextMinute(base.Add(59*time.Second + 900*time.Millisecond)); d != 100*time.Millisecond {
		t.Errorf("expected 100ms just before boundary, got %v", d)
	}
}

func TestIsHourTop(t *testing.T) {
	if !IsHourTop(at(10, 0)) {
		t.Error("minute 0 should be the top of the hour")
	}
	if IsHourTop(at(10, 30)) {
		t.Error("minute 30 is not the top of the hour")
	}
}
