package renderer

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/scene"
)

// Camera generates rays for rendering using a bottom-up screen
// parameterization: (s, t) = (0, 0) maps to the lower-left corner of the
// viewport. Each ray carries a time drawn uniformly from the shutter
// interval for motion blur.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	time0, time1    float64
}

// NewCamera builds a camera from its configuration and the image aspect ratio
func NewCamera(config scene.CameraConfig, aspectRatio float64) *Camera {
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2.0)
	viewportWidth := aspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// jittered in time within the shutter interval
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + sampler.Get1D()*(c.time1-c.time0)
	}

	return core.NewRayAt(c.origin, direction, time)
}
