// inventory/status.go
package inventory

// Request statuses. A request starts pending; rejected, cancelled and
// returned are terminal.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusReturned  = "returned"
)

var transitions = map[string]map[string]bool{
	StatusPending: {
		StatusApproved:  true,
		StatusRejected:  true,
		StatusCancelled: true,
	},
	StatusApproved: {
		StatusCancelled: true,
		StatusReturned:  true,
	},
}

// CanTransition reports whether a request currently in from may move to to.
func CanTransition(from, to string) bool {
	return transitions[from][to]
}

// IsTerminal reports whether no further transition is permitted out of status.
func IsTerminal(status string) bool {
	return status == StatusRejected || status == StatusCancelled || status == StatusReturned
}

// releasesUnit reports whether entering status hands the reserved unit back
// to the asset. Approval keeps the reservation; every other exit from
// circulation restores it.
func releasesUnit(status string) bool {
	switch status {
	case StatusRejected, StatusCancelled, StatusReturned:
		return true
	}
	return false
}
