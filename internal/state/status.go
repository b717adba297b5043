// Package state holds the client-side view of the backend data: one slice
// per resource, each tracking its request lifecycle alongside the data. A
// slice entering the pending phase keeps its previous data visible; only a
// fulfilled response replaces it.
package state

// Status is the request lifecycle of a slice.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}
