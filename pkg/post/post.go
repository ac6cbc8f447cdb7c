package post

import (
	"math"

	"pathtracer/pkg/core"
)

// GaussianBlur blurs a row-major pixel buffer with a separable gaussian
// kernel of the given sigma. Edges clamp to the border pixel. The input
// buffer is left untouched.
func GaussianBlur(buffer []core.Vec3, width, height int, sigma float64) []core.Vec3 {
	if sigma <= 0 {
		out := make([]core.Vec3, len(buffer))
		copy(out, buffer)
		return out
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	horizontal := make([]core.Vec3, len(buffer))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum core.Vec3
			for k := -radius; k <= radius; k++ {
				sx := min(max(x+k, 0), width-1)
				sum = sum.Add(buffer[y*width+sx].Multiply(kernel[k+radius]))
			}
			horizontal[y*width+x] = sum
		}
	}

	out := make([]core.Vec3, len(buffer))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum core.Vec3
			for k := -radius; k <= radius; k++ {
				sy := min(max(y+k, 0), height-1)
				sum = sum.Add(horizontal[sy*width+x].Multiply(kernel[k+radius]))
			}
			out[y*width+x] = sum
		}
	}

	return out
}

// BlurN applies the gaussian blur n times
func BlurN(buffer []core.Vec3, width, height, n int, sigma float64) []core.Vec3 {
	out := buffer
	for i := 0; i < n; i++ {
		out = GaussianBlur(out, width, height, sigma)
	}
	return out
}

// ApplyBloom adds a glow around bright pixels: luminances at or above
// threshold times the buffer maximum pass a high-pass mask, the mask gets
// blurred, and the result is added back onto the input.
func ApplyBloom(buffer []core.Vec3, width, height int, threshold float64) []core.Vec3 {
	maxLuminance := 0.0
	for _, pixel := range buffer {
		maxLuminance = math.Max(maxLuminance, pixel.Luminance())
	}
	if maxLuminance == 0 {
		out := make([]core.Vec3, len(buffer))
		copy(out, buffer)
		return out
	}

	cutoff := threshold * maxLuminance
	highPass := make([]core.Vec3, len(buffer))
	for i, pixel := range buffer {
		if pixel.Luminance() >= cutoff {
			highPass[i] = pixel
		}
	}

	glow := BlurN(highPass, width, height, 5, 8.0)

	out := make([]core.Vec3, len(buffer))
	for i := range buffer {
		out[i] = buffer[i].Add(glow[i])
	}
	return out
}

// StockhamToneMap maps a luminance globally with the Stockham equation.
// maxLuminance is the smallest luminance mapped to pure white.
func StockhamToneMap(luminance, maxLuminance float64) float64 {
	return math.Log(luminance+1.0) / math.Log(maxLuminance+1.0)
}

// ReinhardToneMap maps a luminance globally with the extended Reinhard
// equation
func ReinhardToneMap(luminance, maxLuminance float64) float64 {
	return (luminance * (1.0 + luminance/(maxLuminance*maxLuminance))) / (1.0 + luminance)
}

// ToneMap applies a scalar luminance mapping to every channel of the buffer
func ToneMap(buffer []core.Vec3, mapping func(luminance, maxLuminance float64) float64) []core.Vec3 {
	maxLuminance := 0.0
	for _, pixel := range buffer {
		maxLuminance = math.Max(maxLuminance, math.Max(pixel.X, math.Max(pixel.Y, pixel.Z)))
	}

	out := make([]core.Vec3, len(buffer))
	if maxLuminance == 0 {
		copy(out, buffer)
		return out
	}

	for i, pixel := range buffer {
		out[i] = core.NewVec3(
			mapping(pixel.X, maxLuminance),
			mapping(pixel.Y, maxLuminance),
			mapping(pixel.Z, maxLuminance),
		)
	}
	return out
}

// gaussianKernel builds a normalized 1D kernel with radius 3*sigma
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3.0 * sigma))
	kernel := make([]float64, 2*radius+1)

	sum := 0.0
	for k := -radius; k <= radius; k++ {
		weight := math.Exp(-float64(k*k) / (2.0 * sigma * sigma))
		kernel[k+radius] = weight
		sum += weight
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}
