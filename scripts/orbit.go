package scripts

import (
	"GopherGrab/internal/behaviour"
	"GopherGrab/internal/physics"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitScript circles its object around the position it started at. It pauses
// while the object's body is held by a handle and orbits around wherever it
// was dropped.
type OrbitScript struct {
	behaviour.BaseComponent
	Radius float32
	Speed  float32 // radians per second
	center mgl32.Vec3
	time   float32
	held   bool
}

func init() {
	behaviour.RegisterScript("OrbitScript", func() behaviour.Component {
		return &OrbitScript{Radius: 10.0, Speed: 1.0}
	})
}

func (o *OrbitScript) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (o *OrbitScript) GetTypeName() string {
	return "OrbitScript"
}

func (o *OrbitScript) Start() {
	o.center = o.GetGameObject().Transform.Position.Sub(o.offset())
}

func (o *OrbitScript) Update(deltaTime float32) {
	obj := o.GetGameObject()
	if body, ok := behaviour.FindComponent[*physics.Body](obj); ok && body.HeldBy() != nil {
		o.held = true
		return
	}
	if o.held {
		o.held = false
		o.center = obj.Transform.Position.Sub(o.offset())
	}

	o.time += deltaTime * o.Speed
	obj.Transform.Position = o.center.Add(o.offset())
}

func (o *OrbitScript) offset() mgl32.Vec3 {
	x := float32(math.Cos(float64(o.time))) * o.Radius
	z := float32(math.Sin(float64(o.time))) * o.Radius
	return mgl32.Vec3{x, 0, z}
}
