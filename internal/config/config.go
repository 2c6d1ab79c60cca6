package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Grab   Grab   `yaml:"grab"`
	Handle Handle `yaml:"handle"`
	Camera Camera `yaml:"camera"`
	Scene  Scene  `yaml:"scene"`
}

type Grab struct {
	ReachDistance float32 `yaml:"reach_distance"`
	AllowRotation bool    `yaml:"allow_rotation"`
	Action        string  `yaml:"action"` // input action bound to press/release
}

type Handle struct {
	InterpolationSpeed float32 `yaml:"interpolation_speed"`
}

type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	InvertMouse bool       `yaml:"invert_mouse"`
}

func (c Camera) PositionVec() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}

type Scene struct {
	Seed            int64   `yaml:"seed"`
	GridWidth       int     `yaml:"grid_width"`
	GridDepth       int     `yaml:"grid_depth"`
	Spacing         float32 `yaml:"spacing"`
	CrateHalfExtent float32 `yaml:"crate_half_extent"`
	HeightScale     float32 `yaml:"height_scale"`
	Density         float64 `yaml:"density"` // noise threshold in [-1,1]; higher means fewer crates
	Orbiters        int     `yaml:"orbiters"`
	Rotators        int     `yaml:"rotators"` // crates after the orbiters that spin in place
}

func Default() Config {
	return Config{
		Grab: Grab{
			ReachDistance: 300,
			AllowRotation: true,
			Action:        "Grab",
		},
		Handle: Handle{
			InterpolationSpeed: 10,
		},
		Camera: Camera{
			Position:    [3]float32{0, 0, 60},
			Yaw:         -90,
			Pitch:       0,
			Speed:       70,
			Sensitivity: 0.1,
		},
		Scene: Scene{
			Seed:            42,
			GridWidth:       8,
			GridDepth:       8,
			Spacing:         120,
			CrateHalfExtent: 25,
			HeightScale:     40,
			Density:         -0.1,
			Orbiters:        1,
			Rotators:        2,
		},
	}
}

// Load reads a YAML config from path. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Grab.ReachDistance <= 0 {
		errs = append(errs, fmt.Errorf("grab.reach_distance must be positive, got %v", c.Grab.ReachDistance))
	}
	if c.Grab.Action == "" {
		errs = append(errs, errors.New("grab.action must not be empty"))
	}
	if c.Handle.InterpolationSpeed < 0 {
		errs = append(errs, fmt.Errorf("handle.interpolation_speed must not be negative, got %v", c.Handle.InterpolationSpeed))
	}
	if c.Scene.GridWidth <= 0 || c.Scene.GridDepth <= 0 {
		errs = append(errs, fmt.Errorf("scene grid must be positive, got %dx%d", c.Scene.GridWidth, c.Scene.GridDepth))
	}
	if c.Scene.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("scene.spacing must be positive, got %v", c.Scene.Spacing))
	}
	if c.Scene.CrateHalfExtent <= 0 {
		errs = append(errs, fmt.Errorf("scene.crate_half_extent must be positive, got %v", c.Scene.CrateHalfExtent))
	}
	if c.Scene.Orbiters < 0 {
		errs = append(errs, fmt.Errorf("scene.orbiters must not be negative, got %d", c.Scene.Orbiters))
	}
	if c.Scene.Rotators < 0 {
		errs = append(errs, fmt.Errorf("scene.rotators must not be negative, got %d", c.Scene.Rotators))
	}
	return errors.Join(errs...)
}
