package scene

import (
	"fmt"
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// CameraConfig describes the camera placement and shutter interval
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
	Time0  float64   // Shutter open
	Time1  float64   // Shutter close
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width              int     // Image width
	Height             int     // Image height
	SamplesPerPixel    int     // Number of rays per pixel
	MaxDepth           int     // Maximum ray bounce depth
	AdaptiveMinSamples float64 // Minimum samples as fraction of max (0.0-1.0)
	AdaptiveThreshold  float64 // Relative error threshold for adaptive convergence
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:              400,
		Height:             225,
		SamplesPerPixel:    100,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}
}

// Scene contains all the elements needed for rendering. Shapes and
// materials are immutable after Preprocess and may be read concurrently
// from any number of workers.
type Scene struct {
	Shapes         []geometry.Shape
	CameraConfig   CameraConfig
	SamplingConfig SamplingConfig
	TopColor       core.Vec3 // Background gradient at +Y
	BottomColor    core.Vec3 // Background gradient at -Y

	bvh *geometry.BVH
}

// Add appends a shape to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// Preprocess validates the scene and builds the acceleration structure.
// Malformed geometry is a configuration error and is rejected here, never
// surfaced mid-render.
func (s *Scene) Preprocess() error {
	if err := s.validate(); err != nil {
		return err
	}

	s.bvh = geometry.NewBVH(s.Shapes, s.CameraConfig.Time0, s.CameraConfig.Time1)
	return nil
}

func (s *Scene) validate() error {
	cfg := s.CameraConfig
	if cfg.Center.Subtract(cfg.LookAt).Length() == 0 {
		return fmt.Errorf("scene: camera center and look-at point coincide")
	}
	if cfg.Time1 < cfg.Time0 {
		return fmt.Errorf("scene: shutter interval [%g, %g] is reversed", cfg.Time0, cfg.Time1)
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return fmt.Errorf("scene: vertical field of view %g degrees out of range", cfg.VFov)
	}

	for i, shape := range s.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if sphere.Radius <= 0 || math.IsNaN(sphere.Radius) {
			return fmt.Errorf("scene: sphere %d has non-positive radius %g", i, sphere.Radius)
		}
	}

	return nil
}

// Hit returns the closest intersection in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return s.bvh.Hit(ray, tMin, tMax)
}

// Background returns the radiance of rays that escape the scene: a vertical
// blend of two colors. Enclosed scenes set both colors equal for a constant
// background.
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}
