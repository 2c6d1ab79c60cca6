package scene

import (
	"GopherGrab/internal/config"
	"GopherGrab/internal/grab"
	"GopherGrab/internal/input"
	"GopherGrab/scripts"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIsDeterministicPerSeed(t *testing.T) {
	cfg := config.Default()

	a, err := Build(cfg)
	require.NoError(t, err)
	b, err := Build(cfg)
	require.NoError(t, err)

	require.NotEmpty(t, a.Crates)
	require.Equal(t, len(a.Crates), len(b.Crates))
	for i := range a.Crates {
		assert.Equal(t, a.Crates[i].Name(), b.Crates[i].Name())
		assert.Equal(t, a.Crates[i].Origin(), b.Crates[i].Origin())
	}
}

func TestBuildWiresPlayerAndCrates(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Orbiters = 1

	s, err := Build(cfg)
	require.NoError(t, err)

	require.NotNil(t, s.Player)
	assert.Same(t, s.Grabber, s.Player.GetComponent("Grabber"))
	assert.True(t, s.Actions.IsBound(cfg.Grab.Action, input.Pressed))
	assert.True(t, s.Actions.IsBound(cfg.Grab.Action, input.Released))
	assert.Len(t, s.Manager.FindGameObjectsWithTag(CrateTag), len(s.Crates))
	assert.NotNil(t, s.Crates[0].GetGameObject().GetComponent("OrbitScript"))
	assert.IsType(t, &scripts.OrbitScript{}, s.Crates[0].GetGameObject().GetComponent("OrbitScript"))

	// floor + player capsule + crates
	assert.Len(t, s.World.Bodies(), len(s.Crates)+2)
}

func TestBuildAttachesRotatorsAfterOrbiters(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Density = -2
	cfg.Scene.Orbiters = 1
	cfg.Scene.Rotators = 2

	s, err := Build(cfg)
	require.NoError(t, err)
	require.Greater(t, len(s.Crates), 3)

	for k, crate := range s.Crates {
		obj := crate.GetGameObject()
		orbit := obj.GetComponent("OrbitScript")
		rotate := obj.GetComponent("RotateScript")
		switch {
		case k == 0:
			assert.NotNil(t, orbit, "crate %d", k)
			assert.Nil(t, rotate, "crate %d", k)
		case k <= 2:
			assert.Nil(t, orbit, "crate %d", k)
			assert.IsType(t, &scripts.RotateScript{}, rotate, "crate %d", k)
		default:
			assert.Nil(t, orbit, "crate %d", k)
			assert.Nil(t, rotate, "crate %d", k)
		}
	}

	spinner := s.Crates[1].GetGameObject()
	before := spinner.Transform.Forward()
	position := spinner.Transform.Position
	s.Tick(0.5)
	assert.False(t, near(spinner.Transform.Forward(), before, 1e-3), "rotator turned during the tick")
	assert.Equal(t, position, spinner.Transform.Position, "rotator spins in place")
}

func TestBuildKeepsAtLeastOneCrate(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Density = 2

	s, err := Build(cfg)
	require.NoError(t, err)

	assert.Len(t, s.Crates, 1)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.GridWidth = 0

	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestGrabCrateInScene(t *testing.T) {
	cfg := config.Default()
	cfg.Grab.ReachDistance = 5000
	cfg.Handle.InterpolationSpeed = 0
	cfg.Scene.Orbiters = 0

	s, err := Build(cfg)
	require.NoError(t, err)

	target := s.Crates[len(s.Crates)-1]
	s.Camera.LookAt(target.Origin())

	require.True(t, s.Actions.Dispatch(cfg.Grab.Action, input.Pressed))
	require.Equal(t, grab.Holding, s.Grabber.Grabber.State())
	held := s.Grabber.Grabber.Held()
	require.NotNil(t, held)

	s.Camera.SetOrientation(-90, 0)
	s.Tick(1.0 / 60)

	want := s.Camera.Position.Add(mgl32.Vec3{0, 0, -cfg.Grab.ReachDistance})
	assert.True(t, near(held.Origin(), want, 0.05), "held crate at %v, want %v", held.Origin(), want)

	s.Actions.Dispatch(cfg.Grab.Action, input.Released)
	assert.Equal(t, grab.Idle, s.Grabber.Grabber.State())
}

func near(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
