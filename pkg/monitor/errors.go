package monitor

import (
	"fmt"
	"time"
)

type ExceededMaxLatencyError struct {
	Label    string
	Duration time.Duration
}

func (e ExceededMaxLatencyError) Error() string {
	return fmt.Sprintf("probe: %s took %s, longer than allowed", e.Label, e.Duration)
}
