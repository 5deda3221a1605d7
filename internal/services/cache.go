package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "pitwall"

// Session-lifecycle TTLs. Live data churns, historical data is stable.
const (
	TTLFuture     = 3600 * time.Second
	TTLLive       = 300 * time.Second
	TTLRecent     = 21600 * time.Second
	TTLCompleted  = 86400 * time.Second
	TTLHistorical = 604800 * time.Second
	TTLReference  = 604800 * time.Second
)

// SessionStatus places a session on the freshness timeline.
type SessionStatus string

const (
	SessionFuture     SessionStatus = "future"
	SessionLive       SessionStatus = "live"
	SessionRecent     SessionStatus = "recently_completed"
	SessionCompleted  SessionStatus = "completed"
	SessionHistorical SessionStatus = "historical"
)

// DetermineSessionStatus classifies a session by its start time. A zero
// end time assumes a two-hour session.
func DetermineSessionStatus(sessionStart, sessionEnd time.Time) SessionStatus {
	now := time.Now()
	if sessionEnd.IsZero() {
		sessionEnd = sessionStart.Add(2 * time.Hour)
	}

	switch {
	case now.Before(sessionStart):
		return SessionFuture
	case !now.After(sessionEnd):
		return SessionLive
	}

	sinceEnd := now.Sub(sessionEnd)
	switch {
	case sinceEnd < 2*time.Hour:
		return SessionRecent
	case sinceEnd < 48*time.Hour:
		return SessionCompleted
	default:
		return SessionHistorical
	}
}

// TTLForSession maps session status to a cache lifetime.
func TTLForSession(sessionStart, sessionEnd time.Time) time.Duration {
	switch DetermineSessionStatus(sessionStart, sessionEnd) {
	case SessionFuture:
		return TTLFuture
	case SessionLive:
		return TTLLive
	case SessionRecent:
		return TTLRecent
	case SessionCompleted:
		return TTLCompleted
	default:
		return TTLHistorical
	}
}

type CacheService struct {
	client *redis.Client
	logger *logrus.Logger
}

func NewCacheService(client *redis.Client, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client: client,
		logger: logger,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("key not found")
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

func (s *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	val, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cache existence: %w", err)
	}
	return val > 0, nil
}

// SetWithRetry retries transient set failures with linear backoff.
func (s *CacheService) SetWithRetry(ctx context.Context, key string, value interface{}, expiration time.Duration, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = s.Set(ctx, key, value, expiration); err == nil {
			return nil
		}
		s.logger.Warnf("Cache set failed (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(time.Millisecond * 100 * time.Duration(i+1))
	}
	return err
}

// Flush clears all cache entries
func (s *CacheService) Flush(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}

// Cache key generators. Keys are hierarchical:
// pitwall:{layer}:{resource parts}:{param hash}

// HashParams produces a short stable hash of a parameter set so
// differently-ordered maps yield the same key.
func HashParams(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v;", k, params[k])
	}
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:12]
}

func buildKey(parts ...string) string {
	valid := make([]string, 0, len(parts)+1)
	valid = append(valid, cacheKeyPrefix)
	for _, p := range parts {
		if p != "" {
			valid = append(valid, p)
		}
	}
	return strings.Join(valid, ":")
}

func SessionDataKey(year int, event, sessionType string) string {
	return buildKey("session", fmt.Sprintf("%d", year), slugify(event), strings.ToLower(sessionType))
}

func StrategyCacheKey(sessionID string, params map[string]interface{}) string {
	return buildKey("computed", "strategy", sessionID, HashParams(params))
}

func BattleCacheKey(sessionID string, params map[string]interface{}) string {
	return buildKey("computed", "battle", sessionID, HashParams(params))
}

func TrackReferenceKey(trackID string) string {
	return buildKey("reference", "track", strings.ToLower(trackID))
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
