package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript      ComponentType = "Script"
	ComponentTypeBehaviour   ComponentType = "Behaviour"
	ComponentTypePhysics     ComponentType = "Physics"
	ComponentTypeInteraction ComponentType = "Interaction"
	ComponentTypeCamera      ComponentType = "Camera"
	ComponentTypeCustom      ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}
