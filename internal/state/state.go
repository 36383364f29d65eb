package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/Paintersrp/dn/internal/config"
	"github.com/Paintersrp/dn/internal/constants"
	"github.com/Paintersrp/dn/internal/logging"
	"github.com/Paintersrp/dn/internal/store"
)

type State struct {
	Config     *config.Config
	ConfigHome string
	Store      *store.Store
	Watcher    *StoreWatcher
	Logger     *slog.Logger
	Now        func() time.Time

	logCloser io.Closer
}

// NewState loads the configuration. Resources that depend on flags are
// opened later by Open.
func NewState(configHome string) (*State, error) {
	if configHome == "" {
		configHome = xdg.ConfigHome
	}

	cfg, err := LoadConfig(configHome)
	if err != nil {
		return nil, err
	}

	return &State{
		Config:     cfg,
		ConfigHome: configHome,
		Logger:     logging.Discard(),
		Now:        time.Now,
	}, nil
}

func LoadConfig(configHome string) (*config.Config, error) {
	viper.SetEnvPrefix(constants.AppName)
	viper.AutomaticEnv()

	if err := config.EnsureConfigExists(configHome); err != nil {
		return nil, err
	}

	return config.Load(configHome)
}

// Open applies flag overrides and opens the logger, the store and the store
// watcher. It is safe to call more than once.
func (s *State) Open() error {
	if s.Store != nil {
		return nil
	}

	if err := s.Config.ApplyOverrides(); err != nil {
		return err
	}

	logger, closer, err := logging.New(s.Config.LogFile, s.Config.LogLevel)
	if err != nil {
		return err
	}
	s.Logger = logger
	s.logCloser = closer

	if err := os.MkdirAll(s.Config.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.Open(s.Config.DatabasePath())
	if err != nil {
		return err
	}
	s.Store = st

	watcher, err := NewStoreWatcher(s.Config.DatabasePath())
	if err != nil {
		s.Logger.Warn("store watcher unavailable", "err", err)
	} else {
		watcher.OnChange(func(name string) {
			s.Logger.Debug("store changed", "file", name)
		})
		watcher.OnClose(func() {
			s.Logger.Debug("store watcher closed")
		})
		s.Watcher = watcher
	}

	s.Logger.Info("state opened", "data_dir", s.Config.DataDir, "week_start", s.Config.WeekStart)
	return nil
}

// Close releases resources associated with the state, including the store
// watcher and the database.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logCloser = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
