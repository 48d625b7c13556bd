package game

// Status is the lifecycle state of a room.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusDrawing  Status = "drawing"
	StatusFinished Status = "finished"
)

var statusOrder = map[Status]int{
	StatusWaiting:  0,
	StatusDrawing:  1,
	StatusFinished: 2,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanTransition reports whether a room may move from one status to
// another. The lifecycle is strictly forward (waiting -> drawing ->
// finished): no cycles and no staying in place. A waiting room may be
// finished directly, e.g. when the organizer abandons it.
func CanTransition(from, to Status) bool {
	a, ok := statusOrder[from]
	if !ok {
		return false
	}
	b, ok := statusOrder[to]
	if !ok {
		return false
	}
	return b > a
}
