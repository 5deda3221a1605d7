package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SessionRefresher keeps cached live-session data warm by polling the
// timing provider on a schedule. Refreshed data lands in the cache
// under the same keys the API handlers read from.
type SessionRefresher struct {
	timing    *LiveTimingClient
	cache     *CacheService
	logger    *logrus.Logger
	cron      *cron.Cron
	interval  string
	mu        sync.Mutex
	isRunning bool

	sessionMu      sync.RWMutex
	activeSessions map[string]bool
}

func NewSessionRefresher(timing *LiveTimingClient, cache *CacheService, logger *logrus.Logger, interval string) *SessionRefresher {
	if interval == "" {
		interval = "5m"
	}
	return &SessionRefresher{
		timing:         timing,
		cache:          cache,
		logger:         logger,
		cron:           cron.New(),
		interval:       interval,
		activeSessions: make(map[string]bool),
	}
}

// TrackSession adds a session to the refresh set.
func (s *SessionRefresher) TrackSession(sessionKey string) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	s.activeSessions[sessionKey] = true
}

// UntrackSession drops a session from the refresh set.
func (s *SessionRefresher) UntrackSession(sessionKey string) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	delete(s.activeSessions, sessionKey)
}

// Start begins the scheduled refresh.
func (s *SessionRefresher) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("session refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(schedule, s.refreshAll)
	if err != nil {
		return fmt.Errorf("failed to schedule session refresher: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	s.logger.WithField("interval", s.interval).Info("Session refresher started")
	return nil
}

// Stop halts the scheduled refresh and waits for in-flight jobs.
func (s *SessionRefresher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Session refresher stopped")
}

func (s *SessionRefresher) refreshAll() {
	s.sessionMu.RLock()
	sessions := make([]string, 0, len(s.activeSessions))
	for key := range s.activeSessions {
		sessions = append(sessions, key)
	}
	s.sessionMu.RUnlock()

	if len(sessions) == 0 {
		return
	}

	s.logger.WithField("sessions", len(sessions)).Info("Refreshing tracked sessions")
	for _, sessionKey := range sessions {
		s.refreshSession(sessionKey)
	}
}

func (s *SessionRefresher) refreshSession(sessionKey string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := s.logger.WithField("session_key", sessionKey)

	positions, err := s.timing.GetPositions(ctx, sessionKey)
	if err != nil {
		log.WithError(err).Warn("Failed to refresh positions")
	} else {
		key := buildKey("session", sessionKey, "positions")
		if err := s.cache.Set(ctx, key, positions, TTLLive); err != nil {
			log.WithError(err).Warn("Failed to cache positions")
		}
	}

	weather, err := s.timing.GetWeather(ctx, sessionKey)
	if err != nil {
		log.WithError(err).Warn("Failed to refresh weather")
		return
	}
	key := buildKey("session", sessionKey, "weather")
	if err := s.cache.Set(ctx, key, weather, TTLLive); err != nil {
		log.WithError(err).Warn("Failed to cache weather")
	}
}
