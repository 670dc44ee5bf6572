package chatService

import (
	"testing"
	"time"
)

func TestDelayPolicies(t *testing.T) {
	if d := NoDelay()(); d != 0 {
		t.Fatalf("NoDelay returned %v", d)
	}

	if d := FixedDelay(250 * time.Millisecond)(); d != 250*time.Millisecond {
		t.Fatalf("FixedDelay returned %v", d)
	}

	policy := RangeDelay(100*time.Millisecond, 200*time.Millisecond)
	for i := 0; i < 50; i++ {
		d := policy()
		if d < 100*time.Millisecond || d >= 200*time.Millisecond {
			t.Fatalf("RangeDelay returned %v, want [100ms, 200ms)", d)
		}
	}

	// a degenerate range collapses to the minimum
	if d := RangeDelay(300*time.Millisecond, 300*time.Millisecond)(); d != 300*time.Millisecond {
		t.Fatalf("degenerate range returned %v", d)
	}
}

func TestDelayPolicyFromEnv(t *testing.T) {
	t.Setenv("THINKING_DELAY_MIN_MS", "10")
	t.Setenv("THINKING_DELAY_MAX_MS", "20")

	policy := DelayPolicyFromEnv()
	for i := 0; i < 20; i++ {
		d := policy()
		if d < 10*time.Millisecond || d >= 20*time.Millisecond {
			t.Fatalf("env policy returned %v, want [10ms, 20ms)", d)
		}
	}
}

func TestDelayPolicyFromEnvBadValues(t *testing.T) {
	t.Setenv("THINKING_DELAY_MIN_MS", "not a number")
	t.Setenv("THINKING_DELAY_MAX_MS", "-5")

	// both fall back to the defaults; just make sure it yields something sane
	d := DelayPolicyFromEnv()()
	if d < 600*time.Millisecond || d >= 1400*time.Millisecond {
		t.Fatalf("fallback policy returned %v, want [600ms, 1400ms)", d)
	}
}
