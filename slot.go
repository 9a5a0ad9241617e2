package primemap

type slotState uint8

const (
	slotEmpty slotState = iota
	slotLive
	// Logically deleted. The slot keeps its key so that probe sequences
	// passing through it stay intact until the next rebuild.
	slotTombstone
)

type slot[V any] struct {
	state slotState
	key   string
	value V
}

func (s *slot[V]) isLive() bool {
	return s.state == slotLive
}
