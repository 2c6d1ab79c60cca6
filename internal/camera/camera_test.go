package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{1, 2, 3})

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected position (1,2,3), got %v", cam.Position)
	}

	if !near(cam.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Default camera should look down -Z, got %v", cam.Front)
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{0, 0, 5})

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}

	if !near(cam.Right, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Expected right (1,0,0) looking down -Z, got %v", cam.Right)
	}
}

func TestCameraViewPointForwardMatchesFront(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{4, 5, 6})

	orientations := [][2]float32{
		{-90, 0},
		{0, 0},
		{45, 30},
		{-135, -60},
		{170, 80},
		{90, -80},
	}

	for _, o := range orientations {
		cam.SetOrientation(o[0], o[1])

		pos, rot := cam.ViewPoint()
		if pos != cam.Position {
			t.Errorf("ViewPoint position %v, want %v", pos, cam.Position)
		}

		forward := rot.Rotate(mgl32.Vec3{0, 0, -1})
		if !near(forward, cam.Front, 1e-4) {
			t.Errorf("yaw=%v pitch=%v: forward %v, want %v", o[0], o[1], forward, cam.Front)
		}
	}
}

func TestCameraInvertMouse(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.Sensitivity = 1

	cam.InvertMouse = false
	cam.ProcessMouseMovement(0, 10, true)
	if cam.Pitch != 10 {
		t.Errorf("Expected pitch 10, got %f", cam.Pitch)
	}

	cam.InvertMouse = true
	cam.ProcessMouseMovement(0, 10, true)
	if cam.Pitch != 0 {
		t.Errorf("Expected pitch 0 with inverted mouse, got %f", cam.Pitch)
	}
}

func TestCameraConstrainPitch(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.Sensitivity = 1

	cam.ProcessMouseMovement(0, 500, true)

	if cam.Pitch != 89 {
		t.Errorf("Expected pitch clamped to 89, got %f", cam.Pitch)
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{})
	cam.Speed = 10

	cam.Move(MoveForward, 1, false)
	if !near(cam.Position, mgl32.Vec3{0, 0, -10}, 1e-4) {
		t.Errorf("Expected (0,0,-10), got %v", cam.Position)
	}

	cam.Move(MoveRight, 1, true)
	if !near(cam.Position, mgl32.Vec3{25, 0, -10}, 1e-4) {
		t.Errorf("Expected sprint strafe to (25,0,-10), got %v", cam.Position)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDefaultCamera(mgl32.Vec3{0, 0, 0})

	cam.LookAt(mgl32.Vec3{10, 10, 0})

	want := mgl32.Vec3{1, 1, 0}.Normalize()
	if !near(cam.Front, want, 1e-4) {
		t.Errorf("Expected front %v, got %v", want, cam.Front)
	}
}

func near(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}
