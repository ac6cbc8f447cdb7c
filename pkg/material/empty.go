package material

import (
	"pathtracer/pkg/core"
)

// Empty is a placeholder material that never scatters and never emits
type Empty struct{}

// NewEmpty creates a new no-op material
func NewEmpty() *Empty {
	return &Empty{}
}

// Scatter implements the Material interface by absorbing everything
func (e *Empty) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is unused since the material never scatters
func (e *Empty) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0
}
