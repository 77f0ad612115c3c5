package magnetic

// EventStore is the interface for optional ECS integration. When set on a
// Host, every hover edge of its controllers is forwarded to it.
type EventStore interface {
	EmitEvent(event HoverEvent)
}

// HoverEvent describes one hover edge of a controller.
type HoverEvent struct {
	Type      HoverEdge
	ElementID uint32
	Name      string

	// Pointer is the scroll-adjusted pointer position that caused the edge.
	PointerX, PointerY float64
	Distance           float64
	Radius             float64
}
