package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Well-known session metrics
const (
	Shots          = "shots"
	Kills          = "kills"
	Pickups        = "pickups"
	EnemiesSpawned = "enemies"
	LiveBullets    = "bullets"
	LiveEnemies    = "live_enemies"
	LivePickups    = "live_pickups"
	Particles      = "particles"
	WallBumps      = "bumps"
	FPS            = "fps"
	AnimState      = "anim"
)

// Registry holds named metrics
// Lookups allocate on first use; callers cache the returned pointers and write atomically
type Registry struct {
	mu     sync.RWMutex
	ints   map[string]*atomic.Int64
	gauges map[string]*Gauge
	labels map[string]*Label
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		ints:   make(map[string]*atomic.Int64),
		gauges: make(map[string]*Gauge),
		labels: make(map[string]*Label),
	}
}

func getOrCreate[T any](mu *sync.RWMutex, m map[string]*T, key string) *T {
	mu.RLock()
	if p, ok := m[key]; ok {
		mu.RUnlock()
		return p
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if p, ok := m[key]; ok {
		return p
	}
	p := new(T)
	m[key] = p
	return p
}

// Int returns the counter for key
func (r *Registry) Int(key string) *atomic.Int64 {
	return getOrCreate(&r.mu, r.ints, key)
}

// Gauge returns the float gauge for key
func (r *Registry) Gauge(key string) *Gauge {
	return getOrCreate(&r.mu, r.gauges, key)
}

// Label returns the string label for key
func (r *Registry) Label(key string) *Label {
	return getOrCreate(&r.mu, r.labels, key)
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ints) + len(r.gauges) + len(r.labels)
}

// Reset zeroes every metric without dropping cached pointers
func (r *Registry) Reset() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.ints {
		p.Store(0)
	}
	for _, g := range r.gauges {
		g.Set(0)
	}
	for _, l := range r.labels {
		l.Set("")
	}
}

// Line formats all metrics as "key=value" pairs in key order for the debug HUD
func (r *Registry) Line() string {
	r.mu.RLock()
	fields := make([]string, 0, len(r.ints)+len(r.gauges)+len(r.labels))
	for k, p := range r.ints {
		fields = append(fields, fmt.Sprintf("%s=%d", k, p.Load()))
	}
	for k, g := range r.gauges {
		fields = append(fields, fmt.Sprintf("%s=%.1f", k, g.Get()))
	}
	for k, l := range r.labels {
		fields = append(fields, fmt.Sprintf("%s=%s", k, l.Get()))
	}
	r.mu.RUnlock()

	sort.Strings(fields)
	return strings.Join(fields, " ")
}
