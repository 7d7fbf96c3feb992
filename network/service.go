// Package network provides the cosmetic online-status probe.
// The status feeds presentation only; probe failure silently degrades to
// the offline default and is never retried out of schedule.
package network

import (
	"log"
	"net"
	"sync/atomic"
	"time"
)

// Service periodically dials a known endpoint and publishes the result
// through an atomic flag. It owns one goroutine between Start and Stop.
type Service struct {
	config *Config
	logger *log.Logger

	online  atomic.Bool
	running atomic.Bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewService creates a stopped service. logger may be nil (silent).
func NewService(config *Config, logger *log.Logger) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	return &Service{
		config: config,
		logger: logger,
	}
}

// Start launches the probe loop. The first probe runs immediately so the
// status settles within one timeout of startup.
func (s *Service) Start() error {
	if s.running.Load() {
		return nil
	}
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.running.Store(true)

	go s.loop()
	return nil
}

// Stop terminates the probe loop and waits for it to exit
func (s *Service) Stop() {
	if !s.running.Load() {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.running.Store(false)
}

// IsOnline returns the last probe result; false before the first probe
func (s *Service) IsOnline() bool {
	return s.online.Load()
}

// IsRunning reports whether the probe loop is active
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

func (s *Service) loop() {
	defer close(s.doneCh)

	s.probe()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.probe()
		}
	}
}

func (s *Service) probe() {
	conn, err := net.DialTimeout("tcp", s.config.Address, s.config.Timeout)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("network: probe %s failed: %v", s.config.Address, err)
		}
		s.online.Store(false)
		return
	}
	conn.Close()
	s.online.Store(true)
}
