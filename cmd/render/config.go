package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/BurntSushi/toml"

	"ray/m"
	"ray/vec"
)

type Config struct {
	Samples  int    `toml:"samples"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	MaxDepth int    `toml:"max_depth"`
	Seed     uint64 `toml:"seed"`
	Camera   CameraConfig
}

type CameraConfig struct {
	LookFrom [3]m.Float `toml:"look_from"`
	LookAt   [3]m.Float `toml:"look_at"`
	Up       [3]m.Float `toml:"up"`
	VFov     m.Float    `toml:"vfov"` // degrees
	Aperture m.Float    `toml:"aperture"`
}

func DefaultConfig() Config {
	return Config{
		Samples:  10,
		Width:    600,
		Height:   300,
		MaxDepth: 50,
		Camera: CameraConfig{
			LookFrom: [3]m.Float{10, 2.5, 5},
			LookAt:   [3]m.Float{-4, 0, -2},
			Up:       [3]m.Float{0, 1, 0},
			VFov:     20,
			Aperture: .05,
		},
	}
}

// Load overlays the settings found in a toml file on top of c.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading scene %q: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("scene %q: ignoring unknown key %s", path, key)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return errors.New("number of samples has to be positive")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid picture size %dx%d", c.Width, c.Height)
	case c.MaxDepth <= 0:
		return errors.New("max_depth has to be positive")
	}
	return c.Camera.Validate()
}

// Validate rejects cameras whose basis would come out degenerate.
func (c CameraConfig) Validate() error {
	w := c.From().Sub(c.At())
	if w == vec.Zeros {
		return errors.New("camera look_from and look_at are the same point")
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("camera vfov %v outside (0, 180) degrees", c.VFov)
	}
	up := c.VUp()
	if vec.Cross(up, w).LengthSquared() <= m.Epsilon*up.LengthSquared()*w.LengthSquared() {
		return fmt.Errorf("camera up %v is parallel to the view direction", up)
	}
	return nil
}

func (c CameraConfig) From() vec.Vec3 { return toVec(c.LookFrom) }
func (c CameraConfig) At() vec.Vec3   { return toVec(c.LookAt) }
func (c CameraConfig) VUp() vec.Vec3  { return toVec(c.Up) }

func toVec(a [3]m.Float) vec.Vec3 {
	return vec.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
