// Package lifecycle produces lifecycle signals from timers for the data
// lifecycle loop.
package lifecycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Autosave emits checkpoint signals on a cron schedule. Signals go through
// the same channel as host signals, so the save itself runs on the loop
// goroutine.
type Autosave struct {
	cron *cron.Cron
	out  chan<- domain.LifecycleSignal
	log  logrus.FieldLogger
}

// NewAutosave accepts standard five-field expressions and descriptors such
// as "@every 5m" or "@hourly".
func NewAutosave(schedule string, out chan<- domain.LifecycleSignal, log logrus.FieldLogger) (*Autosave, error) {
	if strings.TrimSpace(schedule) == "" {
		return nil, fmt.Errorf("autosave schedule is empty")
	}
	if out == nil {
		return nil, fmt.Errorf("autosave output channel is nil")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	a := &Autosave{cron: cron.New(), out: out, log: log}
	if _, err := a.cron.AddFunc(schedule, a.tick); err != nil {
		return nil, fmt.Errorf("parse autosave schedule %q: %w", schedule, err)
	}

	return a, nil
}

func (a *Autosave) Start() {
	a.cron.Start()
}

// Stop halts the schedule and returns a context that is done once a running
// tick has finished.
func (a *Autosave) Stop() context.Context {
	return a.cron.Stop()
}

// tick never blocks: a checkpoint that arrives while the loop is still busy
// is dropped, the next one covers it.
func (a *Autosave) tick() {
	select {
	case a.out <- domain.SignalCheckpoint:
	default:
		a.log.WithField("signal", domain.SignalCheckpoint).Warn("lifecycle loop busy, autosave skipped")
	}
}
