package pipeline

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/theirongolddev/flightpath/internal/model"
)

// ProjectFunc runs the projection engine.
type ProjectFunc func(p model.Params, start time.Time) (model.Projection, error)

// Dashboard is everything a renderer needs for one parameter set.
type Dashboard struct {
	Projection model.Projection
	Metrics    model.Metrics
	Chart      []model.ChartPoint
}

// Memo caches projections and their chart series keyed by a hash of
// (params, start month). Params include the goal, so each entry holds exactly
// one chart. Entries are evicted oldest first once capacity is hit.
// Memo is safe for concurrent use.
type Memo struct {
	project  ProjectFunc
	now      func() time.Time
	capacity int

	mu      sync.Mutex
	order   []uint64
	entries map[uint64]*memoEntry

	hits   atomic.Int64
	misses atomic.Int64
}

type memoEntry struct {
	proj  model.Projection
	chart []model.ChartPoint // sampled on first use
}

// NewMemo returns a memo around project. capacity < 1 keeps only the last
// input, which mirrors a render-cycle cache.
func NewMemo(project ProjectFunc, capacity int) *Memo {
	if capacity < 1 {
		capacity = 1
	}
	return &Memo{
		project:  project,
		now:      time.Now,
		capacity: capacity,
		entries:  make(map[uint64]*memoEntry, capacity),
	}
}

// SetClock replaces the time source. Not safe to call concurrently with lookups.
func (m *Memo) SetClock(now func() time.Time) {
	m.now = now
}

type projectionKey struct {
	Params model.Params
	Month  time.Time
}

// Projection returns the cached projection for p, computing it on a miss.
// The timeline is shared with the cache and must not be modified.
func (m *Memo) Projection(p model.Params) (model.Projection, error) {
	proj, _, err := m.projection(p, m.now())
	return proj, err
}

// projection returns a nil entry when the input could not be hashed;
// the result is then computed but not cached.
func (m *Memo) projection(p model.Params, now time.Time) (model.Projection, *memoEntry, error) {
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	key, err := hashstructure.Hash(projectionKey{Params: p, Month: month}, hashstructure.FormatV2, nil)
	if err != nil {
		m.misses.Add(1)
		proj, perr := m.project(p, now)
		return proj, nil, perr
	}

	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	if ok {
		m.hits.Add(1)
		return e.proj, e, nil
	}

	m.misses.Add(1)
	proj, err := m.project(p, now)
	if err != nil {
		return model.Projection{}, nil, err
	}

	e = &memoEntry{proj: proj}
	m.mu.Lock()
	if existing, raced := m.entries[key]; raced {
		e = existing
	} else {
		m.entries[key] = e
		m.order = append(m.order, key)
		for len(m.order) > m.capacity {
			delete(m.entries, m.order[0])
			m.order = m.order[1:]
		}
	}
	m.mu.Unlock()
	return e.proj, e, nil
}

// Chart returns the sampled chart for p.
func (m *Memo) Chart(p model.Params) ([]model.ChartPoint, error) {
	proj, e, err := m.projection(p, m.now())
	if err != nil {
		return nil, err
	}
	return slices.Clone(m.chart(proj, e)), nil
}

func (m *Memo) chart(proj model.Projection, e *memoEntry) []model.ChartPoint {
	if e == nil {
		return SampleChart(proj.Timeline, proj.Params.Goal)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e.chart == nil {
		e.chart = SampleChart(proj.Timeline, proj.Params.Goal)
	}
	return e.chart
}

// Dashboard returns the projection, metrics and chart for p.
// Returned slices are copies; callers may modify them.
func (m *Memo) Dashboard(p model.Params) (Dashboard, error) {
	now := m.now()
	proj, e, err := m.projection(p, now)
	if err != nil {
		return Dashboard{}, err
	}

	chart := slices.Clone(m.chart(proj, e))
	proj.Timeline = slices.Clone(proj.Timeline)
	return Dashboard{
		Projection: proj,
		Metrics:    DeriveMetrics(proj, now),
		Chart:      chart,
	}, nil
}

// Stats reports projection cache hits and misses.
func (m *Memo) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}

// Len returns the number of cached projections.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
