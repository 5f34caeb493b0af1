package huddle

import (
	"context"
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 8 * time.Second}, // capped
	}
	for _, tt := range tests {
		if got := backoffDelay(tt.attempt, 1*time.Second, 8*time.Second); got != tt.want {
			t.Errorf("backoffDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestBackoffDelayOverflow(t *testing.T) {
	if got := backoffDelay(62, 1*time.Second, 8*time.Second); got != 8*time.Second {
		t.Errorf("overflowed delay = %v, want max", got)
	}
}

func TestWithJitter(t *testing.T) {
	base := 1 * time.Second
	for i := 0; i < 100; i++ {
		d := withJitter(base)
		if d < 800*time.Millisecond || d > 1200*time.Millisecond {
			t.Fatalf("jittered delay %v outside +/-20%% of %v", d, base)
		}
	}
	if withJitter(0) != 0 {
		t.Error("zero delay should stay zero")
	}
}

func TestSleepWithContext(t *testing.T) {
	if !sleepWithContext(context.Background(), 0) {
		t.Error("zero duration should complete immediately")
	}
	if !sleepWithContext(context.Background(), time.Millisecond) {
		t.Error("short sleep should complete")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if sleepWithContext(ctx, time.Hour) {
		t.Error("canceled context should abort the sleep")
	}
}
