package config

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/osrview/internal/logging"
)

// reloadDelay absorbs the burst of events an editor produces on save.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the configuration when its file changes and notifies the
// OnConfigChange callbacks. Reloads stop once ctx is done. Without a config
// file there is nothing to watch and Watch is a no-op.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching || m.viper.ConfigFileUsed() == "" {
		return nil
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config"))
	reload := newDebouncer(reloadDelay)
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
		reload.trigger(func() {
			if ctx.Err() != nil {
				return
			}
			m.reloadAndNotify(log)
		})
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) reloadAndNotify(log *zerolog.Logger) {
	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked releases m.mu, which must be held for write, before
// running the callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file; must be called with the write lock held. An
// invalid file leaves the current configuration in place.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// debouncer runs the last triggered function once no trigger arrived for
// delay.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}
