package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"pathtracer/pkg/post"
	"pathtracer/pkg/renderer"
	"pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'light', 'fog' or 'motion'")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 42, "Base random seed")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	bloom := flag.Bool("bloom", false, "Apply a bloom filter to the result")
	blurPasses := flag.Int("blur", 0, "Number of gaussian blur passes to apply")
	toneMap := flag.String("tone", "none", "Tone mapping: 'none', 'stockham' or 'reinhard'")
	output := flag.String("out", "render.png", "Output PNG file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - three spheres (diffuse, metal, glass) over a checkered ground")
		fmt.Println("  light   - enclosed scene lit by an emissive sphere")
		fmt.Println("  fog     - metal sphere inside an isotropic medium")
		fmt.Println("  motion  - moving spheres with an open shutter interval")
		return
	}

	var selectedScene *scene.Scene
	switch *sceneType {
	case "default":
		selectedScene = scene.NewDefaultScene()
	case "light":
		selectedScene = scene.NewLightScene()
	case "fog":
		selectedScene = scene.NewFogScene()
	case "motion":
		selectedScene = scene.NewMotionBlurScene()
	default:
		fmt.Fprintf(os.Stderr, "Unknown scene type: %s\n", *sceneType)
		os.Exit(1)
	}

	if *width > 0 {
		selectedScene.SamplingConfig.Width = *width
	}
	if *height > 0 {
		selectedScene.SamplingConfig.Height = *height
	}
	if *samples > 0 {
		selectedScene.SamplingConfig.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		selectedScene.SamplingConfig.MaxDepth = *depth
	}

	if err := selectedScene.Preprocess(); err != nil {
		fmt.Fprintf(os.Stderr, "Scene error: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	config.Seed = *seed

	r := renderer.NewRenderer(selectedScene, config, renderer.NewDefaultLogger())

	startTime := time.Now()
	buffer, stats, err := r.RenderBuffer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v (%.1f samples/pixel average)\n",
		time.Since(startTime).Round(time.Millisecond), stats.AverageSamples)

	w := selectedScene.SamplingConfig.Width
	h := selectedScene.SamplingConfig.Height

	if *bloom {
		buffer = post.ApplyBloom(buffer, w, h, 0.9)
	}
	if *blurPasses > 0 {
		buffer = post.BlurN(buffer, w, h, *blurPasses, 2.0)
	}
	switch *toneMap {
	case "stockham":
		buffer = post.ToneMap(buffer, post.StockhamToneMap)
	case "reinhard":
		buffer = post.ToneMap(buffer, post.ReinhardToneMap)
	}

	img := renderer.BufferToImage(buffer, w, h)

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s\n", *output)
}
