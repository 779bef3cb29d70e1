package withdrawal

// Withdrawal statuses. A request starts pending; approved and rejected are
// terminal. Cancellation behaves like rejection for the balance, then the
// record is deleted instead of kept.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Audit activity types, one per state transition.
const (
	ActivityApproved = "withdrawal_approved"
	ActivityRejected = "withdrawal_rejected"
)

func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// CanTransition reports whether a record in `from` may move to `to`.
// Only pending records move, and only into a terminal status.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}
