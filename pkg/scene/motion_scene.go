package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// NewMotionBlurScene creates a scene with spheres sweeping upward during a
// [0, 1] shutter interval
func NewMotionBlurScene() *Scene {
	s := &Scene{
		CameraConfig: CameraConfig{
			Center: core.NewVec3(0, 0.5, 3),
			LookAt: core.NewVec3(0, 0.3, -1),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40.0,
			Time0:  0.0,
			Time1:  1.0,
		},
		SamplingConfig: DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewDiffuse(core.NewVec3(0.48, 0.83, 0.53))
	orange := material.NewDiffuse(core.NewVec3(0.9, 0.5, 0.2))
	teal := material.NewDiffuse(core.NewVec3(0.2, 0.7, 0.7))

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.Add(geometry.NewMovingSphere(
		core.NewVec3(-0.6, 0, -1), core.NewVec3(-0.6, 0.3, -1), 0.4, orange, 0, 1))
	s.Add(geometry.NewMovingSphere(
		core.NewVec3(0.7, 0, -1), core.NewVec3(0.7, 0.15, -1), 0.4, teal, 0, 1))

	return s
}
