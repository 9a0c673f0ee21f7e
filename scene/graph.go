package scene

import (
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
	"github.com/lixenwraith/paper-arena/vmath"
)

// Node is a placed body
type Node struct {
	ID          component.EntityID
	Body        Body
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Graph is the in-memory scene used by the terminal renderer and tests
type Graph struct {
	mu     sync.RWMutex
	nodes  map[component.EntityID]*Node
	camera Camera
}

// NewGraph creates an empty scene graph
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[component.EntityID]*Node),
	}
}

// Add places a body at the origin; re-adding an ID replaces its body and keeps the transform
func (g *Graph) Add(id component.EntityID, body Body) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Body = body
		return
	}
	g.nodes[id] = &Node{ID: id, Body: body, Orientation: vmath.Identity()}
}

// Remove drops an entity; removing an unknown ID is a no-op
func (g *Graph) Remove(id component.EntityID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.nodes, id)
}

// SetTransform moves an entity; ignored for unknown IDs
func (g *Graph) SetTransform(id component.EntityID, position mgl64.Vec3, orientation mgl64.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Position = position
		n.Orientation = orientation
	}
}

// SetCollider reshapes an entity, used by growing particles
func (g *Graph) SetCollider(id component.EntityID, c physics.Collider) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.Body.Collider = c
	}
}

// CastRay intersects the candidates and returns hits nearest first
func (g *Graph) CastRay(ray physics.Ray, candidates []component.EntityID) []Hit {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var hits []Hit
	for _, id := range candidates {
		n, ok := g.nodes[id]
		if !ok {
			continue
		}
		d, ok := n.Body.Collider.Raycast(ray, n.Position)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Key: id, Distance: d, Point: ray.At(d)})
	}
	physics.SortHits(hits)
	return hits
}

// Has reports whether an entity is in the scene
func (g *Graph) Has(id component.EntityID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Get returns a copy of a node
func (g *Graph) Get(id component.EntityID) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Len returns the number of placed entities
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Snapshot copies all nodes ordered by kind then ID for stable draw order
func (g *Graph) Snapshot() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Body.Kind != out[j].Body.Kind {
			return out[i].Body.Kind < out[j].Body.Kind
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SetCamera publishes the viewpoint
func (g *Graph) SetCamera(c Camera) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.camera = c
}

// Camera returns the last published viewpoint
func (g *Graph) Camera() Camera {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.camera
}

// Clear removes every entity, used on restart
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[component.EntityID]*Node)
}
