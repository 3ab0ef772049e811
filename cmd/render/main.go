// Command render path traces a small sphere scene and writes the picture as
// PPM, PNG or JPEG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
)

func main() {
	log.SetFlags(0)

	cfg := DefaultConfig()
	var cpuprof, outputFile, sceneFile string
	flag.IntVar(&cfg.Samples, "n", cfg.Samples, "number of samples")
	flag.IntVar(&cfg.Width, "x", cfg.Width, "picture width")
	flag.IntVar(&cfg.Height, "y", cfg.Height, "picture height")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 seeds from the OS)")
	flag.StringVar(&sceneFile, "scene", "", "toml file with camera settings")
	flag.StringVar(&cpuprof, "cpuprof", "", "file to dump cpu profile")
	flag.StringVar(&outputFile, "o", "out.png", "output file")
	flag.Parse()

	if sceneFile != "" {
		if err := cfg.Load(sceneFile); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	if cpuprof != "" {
		f, err := os.Create(cpuprof)
		if err != nil {
			log.Fatalf("could not open cpuprof file %q: %v", cpuprof, err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	write, err := writerFor(outputFile)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	var w io.Writer = os.Stdout
	if outputFile != "-" {
		f, err := os.Create(outputFile)
		if err != nil {
			log.Fatalf("could not open output file %q: %v", outputFile, err)
		}
		defer f.Close()
		w = f
	}

	t0 := time.Now()
	err = Run(write, w, cfg)
	t1 := time.Since(t0)

	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	log.Printf("raytracing took %.3f seconds\n", t1.Seconds())
}

func writerFor(outputFile string) (ImageWriter, error) {
	if outputFile == "-" {
		return WritePPM, nil
	}
	switch ext := strings.ToLower(filepath.Ext(outputFile)); ext {
	case ".png":
		return WritePNG, nil
	case ".jpg", ".jpeg":
		return WriteJPG, nil
	case ".ppm":
		return WritePPM, nil
	default:
		return nil, fmt.Errorf(
			"unsupported file extension %q (supported: ppm, png, jpg/jpeg)",
			ext,
		)
	}
}
