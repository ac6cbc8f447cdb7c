package scene

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/geometry"
	"pathtracer/pkg/material"
)

// NewDefaultScene creates the classic three-sphere scene over a checkered
// ground with a sky gradient background
func NewDefaultScene() *Scene {
	s := &Scene{
		CameraConfig: CameraConfig{
			Center: core.NewVec3(0, 0.35, 1.2),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   50.0,
		},
		SamplingConfig: DefaultSamplingConfig(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}

	checker := material.NewCheckerTexture(10.0,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.3, 0.1))
	ground := material.NewTexturedDiffuse(checker)
	matteBlue := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewReflective(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewRefractive(core.NewVec3(1.0, 1.0, 1.0), 1.5, 0.0)

	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matteBlue))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold))
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))

	return s
}
