package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// NewLightScene creates an enclosed scene lit only by an emissive sphere.
// The background is constant black, so all radiance comes from the light.
func NewLightScene() *Scene {
	config := DefaultSamplingConfig()
	config.MaxDepth = 40

	s := &Scene{
		CameraConfig: CameraConfig{
			Center: core.NewVec3(0, 1.2, 4),
			LookAt: core.NewVec3(0, 0.8, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   40.0,
		},
		SamplingConfig: config,
		TopColor:       core.NewVec3(0, 0, 0),
		BottomColor:    core.NewVec3(0, 0, 0),
	}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	mirror := material.NewReflective(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	lamp := material.NewLight(core.NewVec3(7, 6.5, 6))

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, white))
	s.Add(geometry.NewSphere(core.NewVec3(-0.9, 0.5, 0), 0.5, red))
	s.Add(geometry.NewSphere(core.NewVec3(0.9, 0.5, 0), 0.5, mirror))
	s.Add(geometry.NewSphere(core.NewVec3(0, 3.5, 0), 1.0, lamp))

	return s
}
