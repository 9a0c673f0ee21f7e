package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paper-arena/scene"
	"github.com/lixenwraith/paper-arena/vmath"
)

// CameraSink receives the camera each tick; scenes that draw from a viewpoint implement it
type CameraSink interface {
	SetCamera(scene.Camera)
}

// ThirdPersonCamera trails the player with exponential smoothing
type ThirdPersonCamera struct {
	env      *Env
	position mgl64.Vec3
	target   mgl64.Vec3
}

// NewThirdPersonCamera creates a camera at the origin
func NewThirdPersonCamera(env *Env) *ThirdPersonCamera {
	return &ThirdPersonCamera{env: env}
}

func (c *ThirdPersonCamera) Name() string {
	return "camera"
}

// Init returns the camera to the origin
func (c *ThirdPersonCamera) Init() {
	c.position = mgl64.Vec3{}
	c.target = mgl64.Vec3{}
}

// Update eases toward the ideal offset and look-at point in the player's frame
// The blend factor 1 - s^dt is frame-rate independent
func (c *ThirdPersonCamera) Update(dt time.Duration, position mgl64.Vec3, orientation mgl64.Quat) {
	cfg := &c.env.Config.Camera
	idealOffset := orientation.Rotate(cfg.Offset).Add(position)
	idealLook := orientation.Rotate(cfg.LookAt).Add(position)

	l := 1 - math.Pow(cfg.Smoothing, dt.Seconds())
	c.position = vmath.Lerp(c.position, idealOffset, l)
	c.target = vmath.Lerp(c.target, idealLook, l)

	if sink, ok := c.env.Scene.(CameraSink); ok {
		sink.SetCamera(c.View())
	}
}

// View returns the current viewpoint
func (c *ThirdPersonCamera) View() scene.Camera {
	return scene.Camera{Position: c.position, Target: c.target}
}
