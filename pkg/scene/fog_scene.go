package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// NewFogScene surrounds a metal sphere with an isotropic medium, lit from
// above by an area light
func NewFogScene() *Scene {
	s := &Scene{
		CameraConfig: CameraConfig{
			Center: core.NewVec3(0, 1, 5),
			LookAt: core.NewVec3(0, 0.7, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   35.0,
		},
		SamplingConfig: DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.05, 0.05, 0.08),
		BottomColor:    core.NewVec3(0.05, 0.05, 0.08),
	}

	gray := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	silver := material.NewReflective(core.NewVec3(0.85, 0.85, 0.9), 0.05)
	fog := material.NewIsotropic(core.NewVec3(0.8, 0.85, 0.9))
	lamp := material.NewLight(core.NewVec3(10, 10, 9))

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, gray))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.7, 0), 0.7, silver))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.7, 0), 1.4, fog))
	s.Add(geometry.NewSphere(core.NewVec3(0, 4.5, 1), 1.2, lamp))

	return s
}
