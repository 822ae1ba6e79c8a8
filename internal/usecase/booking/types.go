package booking

import "time"

// BookingInput carries the client-supplied fields. EndTime is accepted for
// wire compatibility and always ignored: the end is computed from the
// service duration so callers cannot spoof a longer slot.
type BookingInput struct {
	ClientName string     `json:"clientName"`
	Barber     string     `json:"barber"`
	Service    string     `json:"service"`
	StartTime  *time.Time `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
}
