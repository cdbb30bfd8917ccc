package asset

// Status is one label from the shared lifecycle list.
type Status string

const (
	StatusAwaitingScan         Status = "AWAITING_SCAN"
	StatusInProgress           Status = "IN_PROGRESS"
	StatusWaiting              Status = "WAITING"
	StatusComplete             Status = "COMPLETE"
	StatusOpen                 Status = "OPEN"
	StatusAwaitingTest         Status = "AWAITING_TEST"
	StatusNotStarted           Status = "NOT_STARTED"
	StatusRegistered           Status = "REGISTERED"
	StatusAwaitingRegistration Status = "AWAITING_REGISTRATION"
	StatusClosed               Status = "CLOSED"
)

// statusOrder is the single shared lifecycle, in advance order. Every
// asset of every kind cycles through the full list - the machine is
// deliberately kind-agnostic, even for labels that are semantically
// irrelevant to a given kind. Known limitation, kept for compatibility;
// a per-kind machine can replace Advance without touching callers.
var statusOrder = []Status{
	StatusAwaitingScan,
	StatusInProgress,
	StatusWaiting,
	StatusComplete,
	StatusOpen,
	StatusAwaitingTest,
	StatusNotStarted,
	StatusRegistered,
	StatusAwaitingRegistration,
	StatusClosed,
}

// Statuses returns the lifecycle labels in advance order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// ValidStatus reports whether s is one of the lifecycle labels.
func ValidStatus(s string) bool {
	return statusIndex(Status(s)) >= 0
}

// Advance returns the label following current in the cyclic lifecycle.
// The last label wraps to the first; advancing len(Statuses()) times
// returns an asset to its original status. Unknown labels restart the
// cycle at the first label.
func Advance(current Status) Status {
	idx := statusIndex(current)
	if idx < 0 {
		return statusOrder[0]
	}
	return statusOrder[(idx+1)%len(statusOrder)]
}

// InitialStatus returns the status a freshly created asset starts in.
// Context-dependent per kind: new services await their first scan, new
// external APIs await registration.
func InitialStatus(kind Kind) Status {
	switch kind {
	case KindService:
		return StatusAwaitingScan
	case KindExternalAPI:
		return StatusAwaitingRegistration
	case KindIntegration:
		return StatusAwaitingTest
	case KindDatabase:
		return StatusOpen
	default:
		return StatusNotStarted
	}
}

func statusIndex(s Status) int {
	for i, label := range statusOrder {
		if label == s {
			return i
		}
	}
	return -1
}
