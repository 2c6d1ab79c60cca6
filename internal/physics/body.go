package physics

import (
	"GopherGrab/internal/behaviour"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CollisionChannel classifies bodies for world queries. Channels are bit flags
// so a query can accept several at once.
type CollisionChannel uint32

const (
	ChannelWorldStatic CollisionChannel = 1 << iota
	ChannelWorldDynamic
	ChannelPawn
	ChannelPhysicsBody
)

func (c CollisionChannel) String() string {
	switch c {
	case ChannelWorldStatic:
		return "WorldStatic"
	case ChannelWorldDynamic:
		return "WorldDynamic"
	case ChannelPawn:
		return "Pawn"
	case ChannelPhysicsBody:
		return "PhysicsBody"
	default:
		return "Mixed"
	}
}

type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
)

// Body is a collision shape attached to a GameObject. Its origin is the owning
// object's transform position.
type Body struct {
	behaviour.BaseComponent
	ID              uint32
	Channel         CollisionChannel
	Shape           Shape
	Radius          float32    // ShapeSphere
	HalfExtents     mgl32.Vec3 // ShapeBox, axis aligned
	SimulatePhysics bool

	world     *World
	heldBy    *Handle
	destroyed bool
}

// NewSphereBody returns a physics-simulated sphere on the PhysicsBody channel.
func NewSphereBody(radius float32) *Body {
	return &Body{
		Channel:         ChannelPhysicsBody,
		Shape:           ShapeSphere,
		Radius:          radius,
		SimulatePhysics: true,
	}
}

// NewBoxBody returns a physics-simulated box on the PhysicsBody channel.
func NewBoxBody(halfExtents mgl32.Vec3) *Body {
	return &Body{
		Channel:         ChannelPhysicsBody,
		Shape:           ShapeBox,
		HalfExtents:     halfExtents,
		SimulatePhysics: true,
	}
}

func (b *Body) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypePhysics
}

func (b *Body) GetTypeName() string {
	return "Body"
}

func (b *Body) OnDestroy() {
	b.destroyed = true
	if b.world != nil {
		b.world.RemoveBody(b)
	}
}

func (b *Body) Name() string {
	if obj := b.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}

// Owner returns the GameObject the body is attached to.
func (b *Body) Owner() *behaviour.GameObject {
	return b.GetGameObject()
}

func (b *Body) Origin() mgl32.Vec3 {
	if obj := b.GetGameObject(); obj != nil {
		return obj.Transform.Position
	}
	return mgl32.Vec3{}
}

func (b *Body) setOrigin(p mgl32.Vec3) {
	if obj := b.GetGameObject(); obj != nil {
		obj.Transform.Position = p
	}
}

func (b *Body) rotation() mgl32.Quat {
	if obj := b.GetGameObject(); obj != nil {
		return obj.Transform.Rotation
	}
	return mgl32.QuatIdent()
}

func (b *Body) setRotation(q mgl32.Quat) {
	if obj := b.GetGameObject(); obj != nil {
		obj.Transform.Rotation = q
	}
}

func (b *Body) IsDestroyed() bool {
	return b.destroyed
}

// HeldBy returns the handle currently holding the body, if any.
func (b *Body) HeldBy() *Handle {
	return b.heldBy
}

func (b *Body) scale() mgl32.Vec3 {
	if obj := b.GetGameObject(); obj != nil {
		s := obj.Transform.Scale
		return mgl32.Vec3{abs(s[0]), abs(s[1]), abs(s[2])}
	}
	return mgl32.Vec3{1, 1, 1}
}

func (b *Body) worldRadius() float32 {
	s := b.scale()
	return b.Radius * max(s[0], s[1], s[2])
}

func (b *Body) worldBounds() (mgl32.Vec3, mgl32.Vec3) {
	s := b.scale()
	half := mgl32.Vec3{
		abs(b.HalfExtents[0]) * s[0],
		abs(b.HalfExtents[1]) * s[1],
		abs(b.HalfExtents[2]) * s[2],
	}
	c := b.Origin()
	return c.Sub(half), c.Add(half)
}

// intersect returns the distance along ray at which it enters the body. A ray
// starting inside the body hits at distance 0.
func (b *Body) intersect(ray Ray) (bool, float32, mgl32.Vec3) {
	switch b.Shape {
	case ShapeBox:
		lo, hi := b.worldBounds()
		if pointInAABB(ray.Origin, lo, hi) {
			return true, 0, ray.Origin
		}
		return RayIntersectAABB(ray, lo, hi)
	default:
		r := b.worldRadius()
		if pointInSphere(ray.Origin, b.Origin(), r) {
			return true, 0, ray.Origin
		}
		return RayIntersectSphere(ray, b.Origin(), r)
	}
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
