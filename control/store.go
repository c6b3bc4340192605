// control/store.go
// Author: momentics <momentics@gmail.com>
//
// Reloadable configuration holder with change listeners.

package control

import (
	"sync"

	"go.uber.org/zap"
)

// Store holds the current Config and notifies listeners when it changes.
// Listeners run synchronously, in registration order, outside the lock.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	listeners []func(Config)
	log       *zap.Logger
}

// NewStore starts from cfg, which is assumed valid.
func NewStore(cfg Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{cfg: cfg, log: log}
}

// Get returns the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Set validates cfg, swaps it in and dispatches reload listeners. An invalid
// cfg leaves the store unchanged.
func (s *Store) Set(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	listeners := append([]func(Config){}, s.listeners...)
	s.mu.Unlock()

	s.log.Info("configuration updated",
		zap.String("capacity", cfg.Ring.Capacity),
		zap.String("allocator", cfg.Ring.Allocator))
	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// Reload loads path and applies it with Set.
func (s *Store) Reload(path string) error {
	cfg, err := LoadFile(path)
	if err != nil {
		s.log.Warn("configuration reload failed", zap.String("path", path), zap.Error(err))
		return err
	}
	return s.Set(cfg)
}

// OnReload registers a listener called after every successful Set.
func (s *Store) OnReload(fn func(Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
