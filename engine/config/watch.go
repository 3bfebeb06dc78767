package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher re-reads a config file whenever it changes on disk and hands valid results to a callback.
type Watcher interface {
	// Current returns the most recent valid configuration.
	//
	// Returns:
	//   - *Config: the current configuration
	Current() *Config

	// Reloads returns how many valid reloads have been delivered since the watcher started.
	//
	// Returns:
	//   - int: reload count
	Reloads() int
}

// watcherImpl is the implementation of the Watcher interface.
type watcherImpl struct {
	mu       *sync.Mutex
	logger   zerolog.Logger
	current  *Config
	reloads  int
	onChange func(*Config)
}

var _ Watcher = &watcherImpl{}

// Watch loads the config file at path and starts watching it. Each write that produces a valid
// configuration is passed to onChange on the watcher goroutine; invalid edits are logged and
// the previous configuration is kept.
//
// Parameters:
//   - path: the config file path (required)
//   - logger: logger for reload events
//   - onChange: callback receiving each new valid configuration (may be nil)
//
// Returns:
//   - Watcher: the running watcher
//   - error: error if the initial load fails
func Watch(path string, logger zerolog.Logger, onChange func(*Config)) (Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch requires a config file path")
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	w := &watcherImpl{
		mu:       &sync.Mutex{},
		logger:   logger,
		current:  cfg,
		onChange: onChange,
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		w.logger.Debug().Str("file", e.Name).Str("op", e.Op.String()).Msg("config changed")
		w.reload(decode(v))
	})
	v.WatchConfig()

	logger.Info().Str("path", path).Msg("watching config")
	return w, nil
}

// reload records a freshly decoded configuration and notifies the callback.
func (w *watcherImpl) reload(cfg *Config, err error) {
	if err != nil {
		w.logger.Warn().Err(err).Msg("config reload rejected")
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.reloads++
	onChange := w.onChange
	w.mu.Unlock()

	w.logger.Info().Msg("config reloaded")
	if onChange != nil {
		onChange(cfg)
	}
}

func (w *watcherImpl) Current() *Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *watcherImpl) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}
