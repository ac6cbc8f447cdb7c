package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains renderer configuration beyond the scene's sampling setup
type Config struct {
	TileSize   int   // Size of each square tile
	NumWorkers int   // Parallel workers (0 = CPU count)
	Seed       int64 // Base seed for per-tile random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Renderer drives a full tile-parallel render pass over a scene
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for a preprocessed scene
func NewRenderer(sc *scene.Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	sampling := sc.SamplingConfig
	aspectRatio := float64(sampling.Width) / float64(sampling.Height)

	return &Renderer{
		scene:  sc,
		camera: NewCamera(sc.CameraConfig, aspectRatio),
		config: config,
		logger: logger,
	}
}

// RenderBuffer renders the scene into a flat row-major buffer of linear
// colors, one Vec3 per pixel. The camera parameterizes the screen
// bottom-up, so rows are flipped here to the top-down order image encoders
// and post filters expect.
func (r *Renderer) RenderBuffer() ([]core.Vec3, RenderStats, error) {
	sampling := r.scene.SamplingConfig
	width, height := sampling.Width, sampling.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("renderer: invalid image size %dx%d", width, height)
	}

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, r.config.TileSize, r.config.Seed)
	pathTracer := integrator.NewPathTracer(sampling.MaxDepth)
	tileRenderer := NewTileRenderer(r.scene, r.camera, pathTracer, sampling)

	pool := NewWorkerPool(tileRenderer, len(tiles), r.config.NumWorkers)
	pool.Start()

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, PixelStats: pixelStats})
	}

	totals := RenderStats{MinSamples: math.MaxInt}
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		totals.merge(result.Stats)
	}
	pool.Stop()
	totals.MaxSamples = sampling.SamplesPerPixel

	r.logger.Printf("Rendered %d pixels, %.1f samples/pixel average (range %d-%d)\n",
		totals.TotalPixels, totals.AverageSamples, totals.MinSamples, totals.MaxSamplesUsed)

	buffer := make([]core.Vec3, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			// Row j counts up from the bottom of the viewport
			buffer[(height-1-j)*width+i] = pixelStats[j][i].GetColor()
		}
	}

	return buffer, totals, nil
}

// Render renders the scene and returns the finished 8-bit image
func (r *Renderer) Render() (*image.RGBA, RenderStats, error) {
	buffer, stats, err := r.RenderBuffer()
	if err != nil {
		return nil, stats, err
	}

	sampling := r.scene.SamplingConfig
	return BufferToImage(buffer, sampling.Width, sampling.Height), stats, nil
}

// BufferToImage converts a linear color buffer into an 8-bit RGBA image
// with gamma correction and clamping
func BufferToImage(buffer []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(buffer[y*width+x]))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.ScrubNaN().GammaCorrect(2.0).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.0 * colorVec.X),
		G: uint8(255.0 * colorVec.Y),
		B: uint8(255.0 * colorVec.Z),
		A: 255,
	}
}
