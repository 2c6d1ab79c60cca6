package grab

// GrabState is the lifecycle state of a ReachGrabber.
type GrabState int

const (
	Idle GrabState = iota
	Holding
)

func (s GrabState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Holding:
		return "Holding"
	default:
		return "Unknown"
	}
}
