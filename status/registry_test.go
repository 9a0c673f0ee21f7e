package status

import (
	"sync"
	"testing"
)

// TestRegistryCachesPointers returns the same metric for the same key
func TestRegistryCachesPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Int(Shots)
	a.Add(3)

	if r.Int(Shots) != a {
		t.Fatal("second lookup returned a different counter")
	}
	if r.Int(Shots).Load() != 3 {
		t.Errorf("shots = %d, want 3", r.Int(Shots).Load())
	}
	if r.Count() != 1 {
		t.Errorf("count = %d, want 1", r.Count())
	}
}

// TestRegistryConcurrentGet races lookups against the same key
func TestRegistryConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Int(Kills).Add(1)
			r.Gauge(FPS).Set(60)
		}()
	}
	wg.Wait()

	if got := r.Int(Kills).Load(); got != 50 {
		t.Errorf("kills = %d, want 50", got)
	}
}

// TestRegistryLineAndReset formats sorted fields and zeroes on reset
func TestRegistryLineAndReset(t *testing.T) {
	r := NewRegistry()
	r.Int(Kills).Store(2)
	r.Gauge(FPS).Set(59.94)
	r.Label(AnimState).Set("walk")

	if got, want := r.Line(), "anim=walk fps=59.9 kills=2"; got != want {
		t.Errorf("line = %q, want %q", got, want)
	}

	r.Reset()
	if got, want := r.Line(), "anim= fps=0.0 kills=0"; got != want {
		t.Errorf("line after reset = %q, want %q", got, want)
	}
}

// TestLabelTruncates keeps labels short
func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Get() != "" {
		t.Error("zero label not empty")
	}
	l.Set("abcdefghijklmnopqrstuvwxyz")
	if got := l.Get(); len(got) != maxLabelLen {
		t.Errorf("label length = %d, want %d", len(got), maxLabelLen)
	}
}
