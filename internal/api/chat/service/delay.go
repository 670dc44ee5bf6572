package chatService

import (
	"math/rand"
	"os"
	"strconv"
	"time"
)

// DelayPolicy produces the simulated "thinking" pause before a bot reply.
// It exists only to drive the typing indicator; tests swap in NoDelay.
type DelayPolicy func() time.Duration

func NoDelay() DelayPolicy {
	return func() time.Duration { return 0 }
}

func FixedDelay(d time.Duration) DelayPolicy {
	return func() time.Duration { return d }
}

func RangeDelay(min, max time.Duration) DelayPolicy {
	if max <= min {
		return FixedDelay(min)
	}
	return func() time.Duration {
		return min + time.Duration(rand.Int63n(int64(max-min)))
	}
}

// DelayPolicyFromEnv reads THINKING_DELAY_MIN_MS / THINKING_DELAY_MAX_MS,
// defaulting to a 600-1400ms pause.
func DelayPolicyFromEnv() DelayPolicy {
	minMs := envMs("THINKING_DELAY_MIN_MS", 600)
	maxMs := envMs("THINKING_DELAY_MAX_MS", 1400)
	return RangeDelay(time.Duration(minMs)*time.Millisecond, time.Duration(maxMs)*time.Millisecond)
}

func envMs(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
