package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor is a single client's limiter with the last time it was used
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Store is a thread-safe set of per-key token buckets. Keys idle for longer
// than the TTL are evicted by a background sweep.
type Store struct {
	visitors map[string]*visitor
	mutex    sync.Mutex

	limit rate.Limit
	burst int
	ttl   time.Duration

	now  func() time.Time
	done chan struct{}
	once sync.Once
}

// NewStore creates a store allowing perMinute requests per key with the given burst.
// A perMinute of 0 or less disables limiting.
func NewStore(perMinute, burst int, ttl time.Duration) *Store {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60.0)
	}
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	s := &Store{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}

	go s.cleanupExpired(ttl)

	return s
}

// Allow reports whether key may make a request now, consuming a token if so
func (s *Store) Allow(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	v, exists := s.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Size returns the current number of tracked keys
func (s *Store) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.visitors)
}

// Stop ends the background sweep
func (s *Store) Stop() {
	s.once.Do(func() { close(s.done) })
}

// cleanupExpired removes idle visitors periodically
func (s *Store) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *Store) evictIdle() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cutoff := s.now().Add(-s.ttl)
	for key, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, key)
		}
	}
}
