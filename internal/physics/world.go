package physics

import (
	"GopherGrab/internal/behaviour"
	"GopherGrab/internal/logger"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var ErrBodyRegistered = errors.New("body already registered with a world")

// QueryParams restricts which bodies a trace may return.
type QueryParams struct {
	// Channels is the set of accepted collision channels. Zero accepts every channel.
	Channels CollisionChannel
	// IgnoreOwner excludes every body attached to this GameObject.
	IgnoreOwner *behaviour.GameObject
}

func (p QueryParams) accepts(b *Body) bool {
	if b.destroyed {
		return false
	}
	if p.Channels != 0 && p.Channels&b.Channel == 0 {
		return false
	}
	if p.IgnoreOwner != nil && b.Owner() == p.IgnoreOwner {
		return false
	}
	return true
}

// Hit is the result of a successful trace.
type Hit struct {
	Body     *Body
	Point    mgl32.Vec3
	Distance float32
}

// World holds the bodies that can be traced against and the handles that move them.
type World struct {
	bodies  []*Body
	handles []*Handle
	nextID  uint32
}

func NewWorld() *World {
	return &World{
		bodies:  make([]*Body, 0),
		handles: make([]*Handle, 0),
		nextID:  1,
	}
}

// AddBody registers b and assigns its ID. IDs increase in registration order.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.world != nil {
		return fmt.Errorf("add body %q: %w", b.Name(), ErrBodyRegistered)
	}
	if b.destroyed {
		return fmt.Errorf("add body %q: %w", b.Name(), ErrBodyDestroyed)
	}

	b.ID = w.nextID
	w.nextID++
	b.world = w
	w.bodies = append(w.bodies, b)
	return nil
}

// RemoveBody unregisters b. A handle holding b lets go of it.
func (w *World) RemoveBody(b *Body) {
	for i, o := range w.bodies {
		if o != b {
			continue
		}
		w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
		b.world = nil
		if b.heldBy != nil {
			logger.Log.Debug("Held body removed from world",
				zap.String("body", b.Name()),
				zap.Uint32("id", b.ID))
			b.heldBy.drop()
		}
		return
	}
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

// LineTrace returns the nearest body accepted by params that the segment
// start→end touches. Hits must lie within the segment. A segment starting
// inside a body hits it at distance 0. Equal distances resolve to the body
// with the lower ID. Zero-length and non-finite segments never hit.
func (w *World) LineTrace(start, end mgl32.Vec3, params QueryParams) (Hit, bool) {
	if !finite(start) || !finite(end) {
		return Hit{}, false
	}
	delta := end.Sub(start)
	length := delta.Len()
	if length == 0 || math.IsInf(float64(length), 0) {
		return Hit{}, false
	}
	ray := Ray{Origin: start, Direction: delta.Mul(1 / length)}

	var best Hit
	found := false
	for _, b := range w.bodies {
		if !params.accepts(b) {
			continue
		}
		ok, t, point := b.intersect(ray)
		if !ok || t > length {
			continue
		}
		if !found || t < best.Distance || (t == best.Distance && b.ID < best.Body.ID) {
			best = Hit{Body: b, Point: point, Distance: t}
			found = true
		}
	}
	return best, found
}

// NewHandle creates a handle that is stepped with the world.
func (w *World) NewHandle(interpolationSpeed float32) *Handle {
	h := &Handle{
		InterpolationSpeed: interpolationSpeed,
		world:              w,
	}
	w.handles = append(w.handles, h)
	return h
}

// Step advances every handle by deltaTime seconds.
func (w *World) Step(deltaTime float32) {
	for _, h := range w.handles {
		h.Step(deltaTime)
	}
}
