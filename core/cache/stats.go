package cache

import (
	"sync/atomic"
	"time"
)

// Stats tracks cache performance metrics.
type Stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	startTime time.Time
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// RecordHit records a cache hit.
func (s *Stats) RecordHit() {
	s.hits.Add(1)
}

// RecordMiss records a cache miss.
func (s *Stats) RecordMiss() {
	s.misses.Add(1)
}

// RecordSet records a cache set operation.
func (s *Stats) RecordSet() {
	s.sets.Add(1)
}

// Hits returns the total number of cache hits.
func (s *Stats) Hits() int64 {
	return s.hits.Load()
}

// Misses returns the total number of cache misses.
func (s *Stats) Misses() int64 {
	return s.misses.Load()
}

// Sets returns the total number of set operations.
func (s *Stats) Sets() int64 {
	return s.sets.Load()
}

// Total returns the total number of get operations (hits + misses).
func (s *Stats) Total() int64 {
	return s.Hits() + s.Misses()
}

// HitRate returns the cache hit rate as a value between 0 and 1.
func (s *Stats) HitRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Hits()) / float64(total)
}

// Uptime returns the duration since the cache was created.
func (s *Stats) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Stats) Reset() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.sets.Store(0)
	s.startTime = time.Now()
}

// Snapshot returns a copy of the current statistics.
func (s *Stats) Snapshot() *Stats {
	snapshot := &Stats{
		startTime: s.startTime,
	}
	snapshot.hits.Store(s.hits.Load())
	snapshot.misses.Store(s.misses.Load())
	snapshot.sets.Store(s.sets.Load())
	return snapshot
}

// StatsSnapshot is a non-atomic view of cache statistics for serialization.
type StatsSnapshot struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	HitRate float64 `json:"hit_rate"`
	Total   int64   `json:"total"`
	Uptime  string  `json:"uptime"`
}

// ToSnapshot converts Stats to a serializable StatsSnapshot.
func (s *Stats) ToSnapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:    s.Hits(),
		Misses:  s.Misses(),
		Sets:    s.Sets(),
		HitRate: s.HitRate(),
		Total:   s.Total(),
		Uptime:  s.Uptime().String(),
	}
}
