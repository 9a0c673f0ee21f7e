package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/component"
	"github.com/lixenwraith/paper-arena/physics"
)

// Body is what the scene knows about an entity: what it is and how it collides
type Body struct {
	Kind     component.Kind
	Collider physics.Collider
}

// Hit is a ray intersection mapped back to the owning entity
type Hit = physics.Hit[component.EntityID]

// Scene is the render collaborator
// CastRay only considers candidates the scene knows; unknown IDs are skipped, never an error
type Scene interface {
	Add(id component.EntityID, body Body)
	Remove(id component.EntityID)
	SetTransform(id component.EntityID, position mgl64.Vec3, orientation mgl64.Quat)
	SetCollider(id component.EntityID, c physics.Collider)
	CastRay(ray physics.Ray, candidates []component.EntityID) []Hit
}

// Camera is the viewpoint published to the renderer
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}
