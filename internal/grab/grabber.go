package grab

import (
	"GopherGrab/internal/behaviour"
	"GopherGrab/internal/config"
	"GopherGrab/internal/logger"
	"GopherGrab/internal/physics"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const DefaultReachDistance float32 = 300

// WorldQuery finds the nearest body touched by a line segment.
type WorldQuery interface {
	LineTrace(start, end mgl32.Vec3, params physics.QueryParams) (physics.Hit, bool)
}

// ConstraintTarget holds at most one body and drags it toward a target location.
type ConstraintTarget interface {
	Attach(body *physics.Body, grabPoint mgl32.Vec3, allowRotation bool) error
	SetTargetLocation(p mgl32.Vec3)
	Detach()
	IsAttached() bool
}

// ViewerPose supplies the current player view point. It is sampled on every
// reach computation.
type ViewerPose interface {
	ViewPoint() (mgl32.Vec3, mgl32.Quat)
}

// ReachSegment runs from the viewer position to ReachDistance along the view direction.
type ReachSegment struct {
	Start mgl32.Vec3
	End   mgl32.Vec3
}

// Deps are the collaborators a ReachGrabber is built with. Owner is excluded
// from reach queries and may be nil.
type Deps struct {
	World  WorldQuery
	Handle ConstraintTarget
	Viewer ViewerPose
	Owner  *behaviour.GameObject
}

// ReachGrabber picks up the first physics body in reach on grab and carries it
// at the end of the reach segment until release. Calls must be serialized by
// the host.
type ReachGrabber struct {
	world  WorldQuery
	handle ConstraintTarget
	viewer ViewerPose
	owner  *behaviour.GameObject

	reachDistance float32
	allowRotation bool

	state GrabState
	held  *physics.Body

	viewPosition mgl32.Vec3
	viewRotation mgl32.Quat

	// inert is set when a collaborator is missing; every operation is then a no-op.
	inert bool
}

func New(deps Deps, cfg config.Grab) *ReachGrabber {
	g := &ReachGrabber{
		world:         deps.World,
		handle:        deps.Handle,
		viewer:        deps.Viewer,
		owner:         deps.Owner,
		reachDistance: cfg.ReachDistance,
		allowRotation: cfg.AllowRotation,
		state:         Idle,
		viewRotation:  mgl32.QuatIdent(),
	}

	if g.reachDistance <= 0 {
		logger.Log.Warn("Invalid reach distance, using default",
			zap.Float32("reachDistance", cfg.ReachDistance),
			zap.Float32("default", DefaultReachDistance))
		g.reachDistance = DefaultReachDistance
	}

	missing := make([]string, 0, 3)
	if deps.World == nil {
		missing = append(missing, "world query")
	}
	if deps.Handle == nil {
		missing = append(missing, "constraint target")
	}
	if deps.Viewer == nil {
		missing = append(missing, "viewer pose")
	}
	if len(missing) > 0 {
		g.inert = true
		logger.Log.Error("Grabber is missing collaborators and will stay inert",
			zap.String("owner", g.ownerName()),
			zap.Strings("missing", missing))
	}

	return g
}

func (g *ReachGrabber) State() GrabState {
	return g.state
}

// Held returns the body being carried, or nil when Idle.
func (g *ReachGrabber) Held() *physics.Body {
	return g.held
}

func (g *ReachGrabber) Inert() bool {
	return g.inert
}

func (g *ReachGrabber) ReachDistance() float32 {
	return g.reachDistance
}

func (g *ReachGrabber) SetReachDistance(d float32) error {
	if d <= 0 {
		return fmt.Errorf("reach distance must be positive, got %v", d)
	}
	g.reachDistance = d
	return nil
}

// SetOwner sets the object excluded from reach queries.
func (g *ReachGrabber) SetOwner(owner *behaviour.GameObject) {
	g.owner = owner
}

// Pose returns the view point sampled by the last reach computation.
func (g *ReachGrabber) Pose() (mgl32.Vec3, mgl32.Quat) {
	return g.viewPosition, g.viewRotation
}

// Forward is the view direction of orientation q.
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(mgl32.Vec3{0, 0, -1})
}

// ComputeReachSegment samples the viewer and returns the current reach segment.
func (g *ReachGrabber) ComputeReachSegment() ReachSegment {
	if g.viewer == nil {
		return ReachSegment{}
	}
	g.viewPosition, g.viewRotation = g.viewer.ViewPoint()
	return ReachSegment{
		Start: g.viewPosition,
		End:   g.viewPosition.Add(Forward(g.viewRotation).Mul(g.reachDistance)),
	}
}

// QueryFirstBody traces the reach segment for the nearest physics body that
// does not belong to the owner.
func (g *ReachGrabber) QueryFirstBody() (physics.Hit, bool) {
	if g.world == nil {
		return physics.Hit{}, false
	}

	segment := g.ComputeReachSegment()
	hit, ok := g.world.LineTrace(segment.Start, segment.End, physics.QueryParams{
		Channels:    physics.ChannelPhysicsBody,
		IgnoreOwner: g.owner,
	})

	if !ok {
		logger.Log.Info("Line trace hit nothing", zap.String("owner", g.ownerName()))
		return hit, false
	}
	logger.Log.Info("Line trace hit",
		zap.String("owner", g.ownerName()),
		zap.String("body", hit.Body.Name()),
		zap.Uint32("id", hit.Body.ID),
		zap.Float32("distance", hit.Distance))
	return hit, true
}

// OnGrabPressed attaches the first body in reach. It is ignored while Holding.
func (g *ReachGrabber) OnGrabPressed() {
	if g.inert {
		return
	}
	if g.state == Holding {
		logger.Log.Debug("Grab ignored while holding",
			zap.String("owner", g.ownerName()),
			zap.String("body", g.held.Name()))
		return
	}

	hit, ok := g.QueryFirstBody()
	if !ok {
		return
	}

	// Grab at the body's origin rather than the traced surface point.
	grabPoint := hit.Body.Origin()
	if err := g.handle.Attach(hit.Body, grabPoint, g.allowRotation); err != nil {
		logger.Log.Error("Could not grab body",
			zap.String("owner", g.ownerName()),
			zap.String("body", hit.Body.Name()),
			zap.Error(err))
		return
	}

	g.state = Holding
	g.held = hit.Body
}

// OnGrabReleased lets go of the held body. It does nothing while Idle.
func (g *ReachGrabber) OnGrabReleased() {
	if g.inert || g.state != Holding {
		return
	}
	g.handle.Detach()
	g.state = Idle
	g.held = nil
}

// OnTick moves the constraint target to the end of the reach segment while
// Holding. If the target has lost its body the grabber returns to Idle.
func (g *ReachGrabber) OnTick(deltaTime float32) {
	if g.inert || g.state != Holding {
		return
	}

	if !g.handle.IsAttached() {
		logger.Log.Warn("Constraint target lost its body, releasing grab",
			zap.String("owner", g.ownerName()),
			zap.String("body", g.held.Name()))
		g.state = Idle
		g.held = nil
		return
	}

	g.handle.SetTargetLocation(g.ComputeReachSegment().End)
}

func (g *ReachGrabber) ownerName() string {
	if g.owner == nil {
		return ""
	}
	return g.owner.Name
}
