package scene

import (
	"GopherGrab/internal/behaviour"
	"GopherGrab/internal/camera"
	"GopherGrab/internal/config"
	"GopherGrab/internal/grab"
	"GopherGrab/internal/input"
	"GopherGrab/internal/logger"
	"GopherGrab/internal/physics"
	"fmt"

	// Registers the prop scripts via init()
	_ "GopherGrab/scripts"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	CrateTag  = "crate"
	PlayerTag = "player"

	noiseFrequency = 0.37
	playerRadius   = 20
)

// Scene is a playable level: a player rig with a grabber facing a field of crates.
type Scene struct {
	Manager *behaviour.ComponentManager
	World   *physics.World
	Camera  *camera.Camera
	Actions *input.ActionMap
	Player  *behaviour.GameObject
	Grabber *grab.GrabberComponent
	Crates  []*physics.Body
}

// Build lays out a scene from cfg. Crates sit on a grid in front of the
// camera wherever the Perlin noise for their cell exceeds cfg.Scene.Density;
// the height of the noise lifts them. The same seed always yields the same field.
func Build(cfg config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	s := &Scene{
		Manager: behaviour.NewComponentManager(),
		World:   physics.NewWorld(),
		Actions: input.NewActionMap(),
	}

	s.Camera = camera.NewDefaultCamera(cfg.Camera.PositionVec())
	s.Camera.Speed = cfg.Camera.Speed
	s.Camera.Sensitivity = cfg.Camera.Sensitivity
	s.Camera.InvertMouse = cfg.Camera.InvertMouse
	s.Camera.SetOrientation(cfg.Camera.Yaw, cfg.Camera.Pitch)

	if err := s.addFloor(cfg.Scene); err != nil {
		return nil, err
	}
	if err := s.addPlayer(cfg); err != nil {
		return nil, err
	}
	if err := s.scatterCrates(cfg.Scene); err != nil {
		return nil, err
	}

	logger.Log.Info("Scene built",
		zap.Int64("seed", cfg.Scene.Seed),
		zap.Int("crates", len(s.Crates)),
		zap.Float32("reachDistance", s.Grabber.Grabber.ReachDistance()))
	return s, nil
}

// Tick runs one frame: components first, then the physics handles.
func (s *Scene) Tick(deltaTime float32) {
	s.Manager.UpdateAll(deltaTime)
	s.World.Step(deltaTime)
}

func (s *Scene) addFloor(sc config.Scene) error {
	width := float32(sc.GridWidth) * sc.Spacing
	depth := float32(sc.GridDepth+1) * sc.Spacing

	obj := behaviour.NewGameObject("Floor")
	obj.Transform.Position = mgl32.Vec3{0, -sc.HeightScale - sc.CrateHalfExtent - 1, -depth / 2}
	floor := physics.NewBoxBody(mgl32.Vec3{width / 2, 1, depth / 2})
	floor.Channel = physics.ChannelWorldStatic
	floor.SimulatePhysics = false
	obj.AddComponent(floor)
	if err := s.World.AddBody(floor); err != nil {
		return fmt.Errorf("add floor: %w", err)
	}
	s.Manager.RegisterGameObject(obj)
	return nil
}

func (s *Scene) addPlayer(cfg config.Config) error {
	s.Player = behaviour.NewGameObject("Player")
	s.Player.Tag = PlayerTag
	s.Player.Transform.Position = s.Camera.Position

	capsule := physics.NewSphereBody(playerRadius)
	capsule.Channel = physics.ChannelPawn
	s.Player.AddComponent(capsule)
	if err := s.World.AddBody(capsule); err != nil {
		return fmt.Errorf("add player: %w", err)
	}

	grabber := grab.New(grab.Deps{
		World:  s.World,
		Handle: s.World.NewHandle(cfg.Handle.InterpolationSpeed),
		Viewer: s.Camera,
		Owner:  s.Player,
	}, cfg.Grab)
	s.Grabber = grab.NewGrabberComponent(grabber, cfg.Grab.Action)
	s.Player.AddComponent(s.Grabber)
	s.Grabber.BindInput(s.Actions)

	s.Manager.RegisterGameObject(s.Player)
	return nil
}

func (s *Scene) scatterCrates(sc config.Scene) error {
	noise := perlin.NewPerlin(2, 2, 3, sc.Seed)

	type cell struct {
		i, j  int
		value float64
	}
	var cells []cell
	best := cell{value: -2}

	for j := 0; j < sc.GridDepth; j++ {
		for i := 0; i < sc.GridWidth; i++ {
			n := noise.Noise2D(float64(i)*noiseFrequency+0.5, float64(j)*noiseFrequency+0.5)
			if n > best.value {
				best = cell{i: i, j: j, value: n}
			}
			if n > sc.Density {
				cells = append(cells, cell{i: i, j: j, value: n})
			}
		}
	}
	// Never leave the field empty.
	if len(cells) == 0 {
		cells = append(cells, best)
	}

	for _, c := range cells {
		x := (float32(c.i) - float32(sc.GridWidth-1)/2) * sc.Spacing
		y := float32(c.value) * sc.HeightScale
		z := -float32(c.j+1) * sc.Spacing

		obj := behaviour.NewGameObject(fmt.Sprintf("Crate_%d_%d", c.i, c.j))
		obj.Tag = CrateTag
		obj.Transform.Position = mgl32.Vec3{x, y, z}

		body := physics.NewBoxBody(mgl32.Vec3{sc.CrateHalfExtent, sc.CrateHalfExtent, sc.CrateHalfExtent})
		obj.AddComponent(body)
		if err := s.World.AddBody(body); err != nil {
			return fmt.Errorf("add %s: %w", obj.Name, err)
		}

		if script := propScript(len(s.Crates), sc); script != "" {
			if _, err := behaviour.AttachScript(obj, script); err != nil {
				return fmt.Errorf("add %s: %w", obj.Name, err)
			}
		}

		s.Crates = append(s.Crates, body)
		s.Manager.RegisterGameObject(obj)
	}
	return nil
}

// propScript names the script the k-th crate gets: orbiters first, then
// rotators, then none.
func propScript(k int, sc config.Scene) string {
	switch {
	case k < sc.Orbiters:
		return "OrbitScript"
	case k < sc.Orbiters+sc.Rotators:
		return "RotateScript"
	default:
		return ""
	}
}
