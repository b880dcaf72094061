// Package config resolves gamekit settings from defaults, an optional
// config.toml under ~/.gamekit and GAMEKIT_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".gamekit"

	KeySaveDir                = "save.dir"
	KeySaveFile               = "save.file"
	KeySaveFormat             = "save.format"
	KeySaveBackend            = "save.backend"
	KeySavePretty             = "save.pretty"
	KeyLifecycleLoadOnStart   = "lifecycle.load_on_start"
	KeyLifecycleSaveOnSuspend = "lifecycle.save_on_suspend"
	KeyLifecycleSaveOnQuit    = "lifecycle.save_on_quit"
	KeyLifecycleAutosave      = "lifecycle.autosave"
	KeyPoolWarmCount          = "pool.warm_count"
	KeyLogLevel               = "log.level"

	BackendFile   = "file"
	BackendSQLite = "sqlite"

	defaultSaveFile      = "playerdata.json"
	defaultSaveFormat    = "json"
	defaultPoolWarmCount = 10
	defaultLogLevel      = "warn"
	defaultSaveDirName   = "data"
)

type Config struct {
	Save      SaveConfig
	Lifecycle LifecycleConfig
	Pool      PoolConfig
	Log       LogConfig
}

type SaveConfig struct {
	Dir     string
	File    string
	Format  string
	Backend string
	Pretty  bool
}

type LifecycleConfig struct {
	LoadOnStart   bool
	SaveOnSuspend bool
	SaveOnQuit    bool
	Autosave      string
}

type PoolConfig struct {
	WarmCount int
}

type LogConfig struct {
	Level logrus.Level
}

type envOverrides struct {
	SaveDir     *string `env:"GAMEKIT_SAVE_DIR"`
	SaveFormat  *string `env:"GAMEKIT_SAVE_FORMAT"`
	SaveBackend *string `env:"GAMEKIT_SAVE_BACKEND"`
	LogLevel    *string `env:"GAMEKIT_LOG_LEVEL"`
}

// Load reads configuration for the user whose home directory is homeDir.
func Load(cfg *viper.Viper, homeDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if strings.TrimSpace(homeDir) == "" {
		return Config{}, errors.New("home directory is empty")
	}

	baseDir := filepath.Join(homeDir, configDir)
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)

	cfg.SetDefault(KeySaveDir, filepath.Join(baseDir, defaultSaveDirName))
	cfg.SetDefault(KeySaveFile, defaultSaveFile)
	cfg.SetDefault(KeySaveFormat, defaultSaveFormat)
	cfg.SetDefault(KeySaveBackend, BackendFile)
	cfg.SetDefault(KeySavePretty, true)
	cfg.SetDefault(KeyLifecycleLoadOnStart, true)
	cfg.SetDefault(KeyLifecycleSaveOnSuspend, true)
	cfg.SetDefault(KeyLifecycleSaveOnQuit, true)
	cfg.SetDefault(KeyLifecycleAutosave, "")
	cfg.SetDefault(KeyPoolWarmCount, defaultPoolWarmCount)
	cfg.SetDefault(KeyLogLevel, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	applyOverrides(cfg, overrides)

	out := Config{
		Save: SaveConfig{
			Dir:     expandHome(cfg.GetString(KeySaveDir), homeDir),
			File:    strings.TrimSpace(cfg.GetString(KeySaveFile)),
			Format:  strings.ToLower(strings.TrimSpace(cfg.GetString(KeySaveFormat))),
			Backend: strings.ToLower(strings.TrimSpace(cfg.GetString(KeySaveBackend))),
			Pretty:  cfg.GetBool(KeySavePretty),
		},
		Lifecycle: LifecycleConfig{
			LoadOnStart:   cfg.GetBool(KeyLifecycleLoadOnStart),
			SaveOnSuspend: cfg.GetBool(KeyLifecycleSaveOnSuspend),
			SaveOnQuit:    cfg.GetBool(KeyLifecycleSaveOnQuit),
			Autosave:      strings.TrimSpace(cfg.GetString(KeyLifecycleAutosave)),
		},
		Pool: PoolConfig{WarmCount: cfg.GetInt(KeyPoolWarmCount)},
	}

	level, err := logrus.ParseLevel(cfg.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", KeyLogLevel, err)
	}
	out.Log.Level = level

	if err := out.validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func applyOverrides(cfg *viper.Viper, overrides envOverrides) {
	if overrides.SaveDir != nil {
		cfg.Set(KeySaveDir, *overrides.SaveDir)
	}
	if overrides.SaveFormat != nil {
		cfg.Set(KeySaveFormat, *overrides.SaveFormat)
	}
	if overrides.SaveBackend != nil {
		cfg.Set(KeySaveBackend, *overrides.SaveBackend)
	}
	if overrides.LogLevel != nil {
		cfg.Set(KeyLogLevel, *overrides.LogLevel)
	}
}

func (c Config) validate() error {
	if c.Save.Dir == "" {
		return fmt.Errorf("%s is empty", KeySaveDir)
	}
	if c.Save.File == "" {
		return fmt.Errorf("%s is empty", KeySaveFile)
	}
	switch c.Save.Format {
	case "json", "toml", "yaml", "yml":
	default:
		return fmt.Errorf("unsupported %s %q", KeySaveFormat, c.Save.Format)
	}
	switch c.Save.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unsupported %s %q", KeySaveBackend, c.Save.Backend)
	}
	if c.Pool.WarmCount < 0 {
		return fmt.Errorf("%s must not be negative", KeyPoolWarmCount)
	}
	return nil
}

func expandHome(path, homeDir string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(homeDir, path[2:])
	}
	return filepath.Clean(path)
}
