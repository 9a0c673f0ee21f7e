package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 for rates such as fps
// Zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is an atomic short string such as the animation state
type Label struct {
	ptr atomic.Pointer[string]
}

// maxLabelLen keeps HUD fields on one line
const maxLabelLen = 16

// Set stores s truncated to maxLabelLen bytes
func (l *Label) Set(s string) {
	if len(s) > maxLabelLen {
		s = s[:maxLabelLen]
	}
	l.ptr.Store(&s)
}

// Get returns the stored string, empty when unset
func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
