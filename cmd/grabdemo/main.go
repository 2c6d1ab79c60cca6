package main

import (
	"GopherGrab/internal/camera"
	"GopherGrab/internal/config"
	"GopherGrab/internal/input"
	"GopherGrab/internal/logger"
	"GopherGrab/internal/physics"
	"GopherGrab/internal/scene"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

const frameTime = float32(1.0 / 60)

// step is one scripted input at a given frame.
type step struct {
	frame  int
	name   string
	action func(s *scene.Scene)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are used when empty)")
	frames := flag.Int("frames", 240, "number of frames to simulate")
	reach := flag.Float64("reach", 0, "override the grab reach distance")
	flag.Parse()

	fmt.Println("===========================================")
	fmt.Println("   GopherGrab headless demo")
	fmt.Println("===========================================")

	logger.Init()
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Log.Error("Could not load config", zap.String("path", *configPath), zap.Error(err))
		os.Exit(1)
	}

	s, err := scene.Build(cfg)
	if err != nil {
		logger.Log.Error("Could not build scene", zap.Error(err))
		os.Exit(1)
	}

	if *reach != 0 {
		if err := s.Grabber.Grabber.SetReachDistance(float32(*reach)); err != nil {
			logger.Log.Warn("Ignoring reach override", zap.Error(err))
		}
	}

	run(s, timeline(cfg), *frames)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Log.Warn("Config file not found, using defaults", zap.String("path", path))
		return config.Default(), nil
	}
	return cfg, err
}

func timeline(cfg config.Config) []step {
	press := func(s *scene.Scene) { s.Actions.Dispatch(cfg.Grab.Action, input.Pressed) }
	release := func(s *scene.Scene) { s.Actions.Dispatch(cfg.Grab.Action, input.Released) }

	return []step{
		{frame: 1, name: "aim at nearest crate", action: func(s *scene.Scene) {
			if crate := nearestCrate(s); crate != nil {
				s.Camera.LookAt(crate.Origin())
			}
		}},
		{frame: 10, name: "grab", action: press},
		{frame: 20, name: "grab again while holding", action: press},
		{frame: 150, name: "release", action: release},
		{frame: 151, name: "release again", action: release},
		{frame: 160, name: "look at the sky", action: func(s *scene.Scene) { s.Camera.SetOrientation(-90, 80) }},
		{frame: 170, name: "grab nothing", action: press},
		{frame: 171, name: "release nothing", action: release},
	}
}

func run(s *scene.Scene, steps []step, frames int) {
	next := 0
	for frame := 1; frame <= frames; frame++ {
		for next < len(steps) && steps[next].frame == frame {
			logger.Log.Info("Input", zap.Int("frame", frame), zap.String("step", steps[next].name))
			steps[next].action(s)
			next++
		}

		// Sweep the view and strafe to the right while carrying.
		if frame > 20 && frame <= 140 {
			s.Camera.ProcessMouseMovement(7.5, 0, true)
			s.Camera.Move(camera.MoveRight, frameTime, false)
		}

		s.Tick(frameTime)

		if frame%30 == 0 {
			fields := []zap.Field{
				zap.Int("frame", frame),
				zap.Stringer("state", s.Grabber.Grabber.State()),
			}
			if held := s.Grabber.Grabber.Held(); held != nil {
				pos := held.Origin()
				fields = append(fields,
					zap.String("body", held.Name()),
					zap.Float32s("position", pos[:]))
			}
			logger.Log.Info("Frame", fields...)
		}
	}

	fmt.Printf("Simulated %d frames with reach %.0f\n", frames, s.Grabber.Grabber.ReachDistance())
}

func nearestCrate(s *scene.Scene) *physics.Body {
	var best *physics.Body
	var bestDist float32
	for _, crate := range s.Crates {
		d := crate.Origin().Sub(s.Camera.Position).Len()
		if best == nil || d < bestDist {
			best, bestDist = crate, d
		}
	}
	return best
}
