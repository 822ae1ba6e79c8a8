package booking

// Booking status values. CANCELLED and COMPLETED are both reachable from
// any state: the original flow never guarded terminal transitions, and that
// permissive behavior is kept on purpose (see DESIGN.md).
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusConfirmed
}
