package asset

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownAsset is reported by a handle whose path is not in the catalog
var ErrUnknownAsset = errors.New("unknown asset")

// Catalog is a Loader backed by in-memory descriptors
// A non-zero latency completes handles from a timer goroutine, reproducing the
// out-of-band completion of a real loader
type Catalog struct {
	mu      sync.RWMutex
	models  map[string]Model
	clips   map[string]Clip
	latency time.Duration
	logger  *slog.Logger
}

// NewCatalog creates an empty catalog
func NewCatalog(latency time.Duration, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		models:  make(map[string]Model),
		clips:   make(map[string]Clip),
		latency: latency,
		logger:  logger,
	}
}

// RegisterModel adds a model descriptor
func (c *Catalog) RegisterModel(m Model) {
	c.mu.Lock()
	c.models[m.Path] = m
	c.mu.Unlock()
}

// RegisterClip adds a clip descriptor
func (c *Catalog) RegisterClip(clip Clip) {
	c.mu.Lock()
	c.clips[clip.Path] = clip
	c.mu.Unlock()
}

// LoadModel implements Loader
func (c *Catalog) LoadModel(path string) *Handle[Model] {
	c.mu.RLock()
	m, ok := c.models[path]
	c.mu.RUnlock()
	return load(c, path, m, ok)
}

// LoadAnimationClip implements Loader
func (c *Catalog) LoadAnimationClip(path string) *Handle[Clip] {
	c.mu.RLock()
	clip, ok := c.clips[path]
	c.mu.RUnlock()
	return load(c, path, clip, ok)
}

func load[T any](c *Catalog, path string, v T, ok bool) *Handle[T] {
	h := NewHandle[T]()
	if !ok {
		c.logger.Warn("asset not found", "path", path)
		h.Fail(errors.Wrapf(ErrUnknownAsset, "load %q", path))
		return h
	}

	if c.latency <= 0 {
		h.Resolve(v)
		return h
	}

	time.AfterFunc(c.latency, func() {
		h.Resolve(v)
		c.logger.Debug("asset loaded", "path", path)
	})
	return h
}
