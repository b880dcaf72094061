package domain

import (
	"fmt"
	"strings"
	"time"
)

type LifecycleSignal string

const (
	SignalSuspend    LifecycleSignal = "suspend"
	SignalResume     LifecycleSignal = "resume"
	SignalTerminate  LifecycleSignal = "terminate"
	SignalCheckpoint LifecycleSignal = "checkpoint"
)

func ParseLifecycleSignal(raw string) (LifecycleSignal, error) {
	signal := LifecycleSignal(strings.ToLower(strings.TrimSpace(raw)))
	switch signal {
	case SignalSuspend, SignalResume, SignalTerminate, SignalCheckpoint:
		return signal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSignal, raw)
	}
}

// Initializer is implemented by persistable objects that fill in missing
// identity or bookkeeping fields once loading has finished.
type Initializer interface {
	EnsureInitialized(now time.Time, appVersion string, newID func() string)
}

// SaveStamper is implemented by persistable objects that record when and by
// which app version they were last written.
type SaveStamper interface {
	MarkSaved(now time.Time, appVersion string)
}
