package scripts

import (
	"GopherGrab/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

type RotateScript struct {
	behaviour.BaseComponent
	Speed float32 // degrees per second
}

func init() {
	behaviour.RegisterScript("RotateScript", func() behaviour.Component {
		return &RotateScript{Speed: 45.0}
	})
}

func (r *RotateScript) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeScript
}

func (r *RotateScript) GetTypeName() string {
	return "RotateScript"
}

func (r *RotateScript) Update(deltaTime float32) {
	transform := r.GetGameObject().Transform
	transform.Rotate(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(r.Speed*deltaTime))
}
