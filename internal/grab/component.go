package grab

import (
	"GopherGrab/internal/behaviour"
	"GopherGrab/internal/input"
	"GopherGrab/internal/logger"

	"go.uber.org/zap"
)

// GrabberComponent runs a ReachGrabber as part of a GameObject's lifecycle.
type GrabberComponent struct {
	behaviour.BaseComponent
	Grabber *ReachGrabber
	Action  string
}

func NewGrabberComponent(grabber *ReachGrabber, action string) *GrabberComponent {
	return &GrabberComponent{Grabber: grabber, Action: action}
}

func (c *GrabberComponent) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeInteraction
}

func (c *GrabberComponent) GetTypeName() string {
	return "Grabber"
}

// Awake makes the owning object the grabber's owner unless one was injected.
func (c *GrabberComponent) Awake() {
	if c.Grabber != nil && c.Grabber.owner == nil {
		c.Grabber.SetOwner(c.GetGameObject())
	}
}

func (c *GrabberComponent) Update(deltaTime float32) {
	if c.Grabber == nil {
		return
	}
	c.Grabber.OnTick(deltaTime)
}

func (c *GrabberComponent) OnDestroy() {
	if c.Grabber == nil {
		return
	}
	c.Grabber.OnGrabReleased()
}

// BindInput binds the grab action's press and release to the grabber. It
// reports false when there is nothing to bind to.
func (c *GrabberComponent) BindInput(actions *input.ActionMap) bool {
	if actions == nil || c.Grabber == nil {
		logger.Log.Error("Input action map not found, grab input is unbound",
			zap.String("owner", c.ownerName()),
			zap.String("action", c.Action))
		return false
	}
	actions.BindAction(c.Action, input.Pressed, c.Grabber.OnGrabPressed)
	actions.BindAction(c.Action, input.Released, c.Grabber.OnGrabReleased)
	return true
}

func (c *GrabberComponent) ownerName() string {
	if obj := c.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
