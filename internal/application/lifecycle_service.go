package application

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type LifecycleOptions struct {
	LoadOnStart   bool
	SaveOnSuspend bool
	SaveOnQuit    bool
	Pretty        bool
}

func DefaultLifecycleOptions() LifecycleOptions {
	return LifecycleOptions{LoadOnStart: true, SaveOnSuspend: true, SaveOnQuit: true, Pretty: true}
}

type LifecycleConfig struct {
	FileName   string
	AppVersion string
	Options    LifecycleOptions
	Clock      ports.Clock
	NewID      func() string
	Logger     logrus.FieldLogger
}

// DataLifecycleService loads a fixed set of persistable objects once and
// writes them back on lifecycle boundaries. It is not safe for concurrent
// use; Run serializes signal handling on the caller's goroutine.
type DataLifecycleService struct {
	saves      ports.SaveService
	source     ports.ObjectSource
	fileName   string
	appVersion string
	opts       LifecycleOptions
	clock      ports.Clock
	newID      func() string
	log        logrus.FieldLogger

	objects []any
	cached  bool
}

func NewDataLifecycleService(saves ports.SaveService, source ports.ObjectSource, cfg LifecycleConfig) *DataLifecycleService {
	if cfg.Clock == nil {
		cfg.Clock = ports.SystemClock{}
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.Logger = discard
	}

	return &DataLifecycleService{
		saves:      saves,
		source:     source,
		fileName:   cfg.FileName,
		appVersion: cfg.AppVersion,
		opts:       cfg.Options,
		clock:      cfg.Clock,
		newID:      cfg.NewID,
		log:        cfg.Logger.WithField("file", cfg.FileName),
	}
}

func (s *DataLifecycleService) FileName() string {
	return s.fileName
}

// Objects builds the object list on first use, drops absent entries and
// memoizes the result, including an empty one.
func (s *DataLifecycleService) Objects() []any {
	if s.cached {
		return s.objects
	}

	var built []any
	if s.source != nil {
		built = s.source.BuildObjects()
	}

	objects := make([]any, 0, len(built))
	for _, object := range built {
		if domain.Absent(object) {
			continue
		}
		objects = append(objects, object)
	}

	s.objects = objects
	s.cached = true
	return s.objects
}

func (s *DataLifecycleService) InvalidateCache() {
	s.objects = nil
	s.cached = false
}

// Start loads saved state when configured to, then lets objects fill in
// first-boot identity and login bookkeeping.
func (s *DataLifecycleService) Start(ctx context.Context) error {
	if s.opts.LoadOnStart {
		if err := s.LoadAll(ctx); err != nil {
			return err
		}
	}

	now := s.clock.Now()
	for _, object := range s.Objects() {
		if initializer, ok := object.(domain.Initializer); ok {
			initializer.EnsureInitialized(now, s.appVersion, s.newID)
		}
	}

	return nil
}

func (s *DataLifecycleService) SaveAll(ctx context.Context, pretty bool) error {
	objects := s.Objects()
	if len(objects) == 0 {
		return nil
	}

	now := s.clock.Now()
	for _, object := range objects {
		if stamper, ok := object.(domain.SaveStamper); ok {
			stamper.MarkSaved(now, s.appVersion)
		}
	}

	if err := s.saves.SaveMany(ctx, objects, s.fileName, pretty); err != nil {
		return fmt.Errorf("save lifecycle objects: %w", err)
	}

	s.log.WithField("objects", len(objects)).Debug("saved lifecycle objects")
	return nil
}

func (s *DataLifecycleService) LoadAll(ctx context.Context) error {
	objects := s.Objects()
	if len(objects) == 0 {
		return nil
	}

	if err := s.saves.LoadMany(ctx, objects, s.fileName); err != nil {
		return fmt.Errorf("load lifecycle objects: %w", err)
	}

	s.log.WithField("objects", len(objects)).Debug("loaded lifecycle objects")
	return nil
}

// HandleSignal applies one lifecycle signal. Suspend and terminate save only
// when enabled; checkpoint always saves; resume does nothing.
func (s *DataLifecycleService) HandleSignal(ctx context.Context, sig domain.LifecycleSignal) error {
	s.log.WithField("signal", sig).Debug("lifecycle signal")

	switch sig {
	case domain.SignalSuspend:
		if s.opts.SaveOnSuspend {
			return s.SaveAll(ctx, s.opts.Pretty)
		}
	case domain.SignalTerminate:
		if s.opts.SaveOnQuit {
			return s.SaveAll(ctx, s.opts.Pretty)
		}
	case domain.SignalCheckpoint:
		return s.SaveAll(ctx, s.opts.Pretty)
	case domain.SignalResume:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSignal, sig)
	}

	return nil
}

// Run applies signals in arrival order until a terminate signal has been
// handled, the channel is closed or ctx is done. A failed save on terminate
// is returned; other failures are logged and the loop keeps going.
func (s *DataLifecycleService) Run(ctx context.Context, signals <-chan domain.LifecycleSignal) error {
	return s.RunReporting(ctx, signals, nil)
}

// RunReporting is Run with report called after every handled signal.
func (s *DataLifecycleService) RunReporting(ctx context.Context, signals <-chan domain.LifecycleSignal, report func(domain.LifecycleSignal, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return nil
			}

			err := s.HandleSignal(ctx, sig)
			if report != nil {
				report(sig, err)
			}
			if sig == domain.SignalTerminate {
				return err
			}
			if err != nil {
				s.log.WithError(err).WithField("signal", sig).Error("lifecycle signal failed")
			}
		}
	}
}
