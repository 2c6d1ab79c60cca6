package physics

import (
	"GopherGrab/internal/logger"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	ErrNilBody          = errors.New("nil body")
	ErrAlreadyAttached  = errors.New("handle already holds a body")
	ErrBodyHeld         = errors.New("body is held by another handle")
	ErrBodyNotSimulated = errors.New("body does not simulate physics")
	ErrBodyDestroyed    = errors.New("body is destroyed")
	ErrForeignBody      = errors.New("body is not registered with this handle's world")
)

// Handle drags a single body toward a target location. The body keeps
// participating in the world while held.
type Handle struct {
	// InterpolationSpeed is the rate, per second, at which the grab point closes
	// the distance to the target.
	InterpolationSpeed float32

	world         *World
	body          *Body
	grabOffset    mgl32.Vec3 // grab point relative to the body origin at attach time
	grabRotation  mgl32.Quat
	allowRotation bool
	target        mgl32.Vec3
}

// Attach grabs body at grabPoint. The target starts at grabPoint so the body
// does not move until SetTargetLocation is called.
func (h *Handle) Attach(body *Body, grabPoint mgl32.Vec3, allowRotation bool) error {
	switch {
	case body == nil:
		return ErrNilBody
	case h.body != nil:
		return fmt.Errorf("attach %q: %w", body.Name(), ErrAlreadyAttached)
	case body.destroyed:
		return fmt.Errorf("attach %q: %w", body.Name(), ErrBodyDestroyed)
	case body.world != h.world:
		return fmt.Errorf("attach %q: %w", body.Name(), ErrForeignBody)
	case !body.SimulatePhysics:
		return fmt.Errorf("attach %q: %w", body.Name(), ErrBodyNotSimulated)
	case body.heldBy != nil:
		return fmt.Errorf("attach %q: %w", body.Name(), ErrBodyHeld)
	}

	h.body = body
	h.grabOffset = grabPoint.Sub(body.Origin())
	h.grabRotation = body.rotation()
	h.allowRotation = allowRotation
	h.target = grabPoint
	body.heldBy = h

	logger.Log.Debug("Handle attached",
		zap.String("body", body.Name()),
		zap.Uint32("id", body.ID),
		zap.Bool("allowRotation", allowRotation))
	return nil
}

// SetTargetLocation moves the target. It does nothing while detached.
func (h *Handle) SetTargetLocation(p mgl32.Vec3) {
	if h.body == nil {
		return
	}
	h.target = p
}

// Detach releases the held body. Safe to call when nothing is held.
func (h *Handle) Detach() {
	if h.body == nil {
		return
	}
	logger.Log.Debug("Handle released",
		zap.String("body", h.body.Name()),
		zap.Uint32("id", h.body.ID))
	h.drop()
}

func (h *Handle) drop() {
	if h.body != nil {
		h.body.heldBy = nil
	}
	h.body = nil
}

func (h *Handle) IsAttached() bool {
	return h.body != nil
}

func (h *Handle) HeldBody() *Body {
	return h.body
}

// Target returns the current target location and whether a body is held.
func (h *Handle) Target() (mgl32.Vec3, bool) {
	return h.target, h.body != nil
}

// Step moves the held body so its grab point approaches the target.
func (h *Handle) Step(deltaTime float32) {
	if h.body == nil || deltaTime <= 0 {
		return
	}

	alpha := float32(1)
	if h.InterpolationSpeed > 0 {
		alpha = 1 - float32(math.Exp(float64(-h.InterpolationSpeed*deltaTime)))
	}

	grabPoint := h.body.Origin().Add(h.grabOffset)
	grabPoint = grabPoint.Add(h.target.Sub(grabPoint).Mul(alpha))
	h.body.setOrigin(grabPoint.Sub(h.grabOffset))

	if !h.allowRotation {
		h.body.setRotation(h.grabRotation)
	}
}
