package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/gamekit/internal/adapters/codec"
	"github.com/bnema/gamekit/internal/adapters/lifecycle/ossignal"
	"github.com/bnema/gamekit/internal/adapters/metrics/prom"
	statusadapter "github.com/bnema/gamekit/internal/adapters/render/status"
	"github.com/bnema/gamekit/internal/adapters/save"
	filestore "github.com/bnema/gamekit/internal/adapters/save/file"
	sqlitestore "github.com/bnema/gamekit/internal/adapters/save/sqlite"
	"github.com/bnema/gamekit/internal/application"
	"github.com/bnema/gamekit/internal/config"
	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
	"github.com/bnema/gamekit/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const sqliteFileName = "saves.db"

type app struct {
	cfg             config.Config
	log             *logrus.Logger
	backend         *save.Service
	saves           *save.Facade
	metrics         *prom.Collector
	lifecycle       *application.DataLifecycleService
	profiles        *application.ProfileService
	pools           *application.PoolService
	signals         *ossignal.Source
	profileRenderer func(application.ProfileStatus, statusadapter.RenderOptions) (string, error)
	benchRenderer   func(application.PoolBenchReport) (string, error)
	now             func() time.Time
	closers         []func() error
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(cfg.Log.Level)

	c, err := codec.ForFormat(cfg.Save.Format)
	if err != nil {
		return nil, fmt.Errorf("wire save codec: %w", err)
	}

	a := &app{
		cfg:             cfg,
		log:             logger,
		metrics:         prom.NewCollector(""),
		signals:         ossignal.New(),
		profileRenderer: statusadapter.RenderProfile,
		benchRenderer:   statusadapter.RenderBench,
		now:             time.Now,
	}

	store, err := a.wireStore(cfg.Save)
	if err != nil {
		return nil, err
	}

	a.backend = save.NewService(store, c, logger.WithField("backend", cfg.Save.Backend))
	a.saves = save.NewFacade(a.backend)
	a.saves.SetDefault(a.metrics.InstrumentSaveService(a.backend))

	profile := domain.NewProfile()
	settings := domain.NewSettings()
	a.lifecycle = application.NewDataLifecycleService(a.saves, application.PlayerObjects(profile, settings), application.LifecycleConfig{
		FileName:   cfg.Save.File,
		AppVersion: version.Version,
		Options: application.LifecycleOptions{
			LoadOnStart:   cfg.Lifecycle.LoadOnStart,
			SaveOnSuspend: cfg.Lifecycle.SaveOnSuspend,
			SaveOnQuit:    cfg.Lifecycle.SaveOnQuit,
			Pretty:        cfg.Save.Pretty,
		},
		Clock:  ports.SystemClock{},
		Logger: logger,
	})
	a.profiles = application.NewProfileService(a.lifecycle, profile, settings)
	a.pools = application.NewPoolService(logger, a.metrics.PoolObserver("bench"))

	return a, nil
}

func (a *app) wireStore(cfg config.SaveConfig) (ports.BlobStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := sqlitestore.Open(filepath.Join(cfg.Dir, sqliteFileName))
		if err != nil {
			return nil, fmt.Errorf("wire sqlite save store: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	default:
		store, err := filestore.NewStore(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("wire file save store: %w", err)
		}
		return store, nil
	}
}

// session loads the player save, runs fn and then handles a terminate
// signal, which saves when save-on-quit is enabled.
func (a *app) session(ctx context.Context, fn func(context.Context) error) error {
	if err := a.lifecycle.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	runErr := fn(ctx)
	if err := a.lifecycle.HandleSignal(ctx, domain.SignalTerminate); err != nil {
		return errors.Join(runErr, fmt.Errorf("end session: %w", err))
	}

	return runErr
}

func (a *app) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
