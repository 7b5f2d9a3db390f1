package booking

// State is the client-facing listing filter. It is distinct from the
// booking status: four of its values filter on status equality, three on
// the booking window relative to now, and ALL does not filter at all.
type State string

const (
	StateAll      State = "ALL"
	StateWaiting  State = "WAITING"
	StateApproved State = "APPROVED"
	StateRejected State = "REJECTED"
	StateCanceled State = "CANCELED"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateCurrent  State = "CURRENT"
)
