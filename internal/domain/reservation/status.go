package reservation

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// transitions encodes the booking state machine. Cancellation is reachable
// from every non-terminal state; no_show only from confirmed.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MapRemoteStatus translates the PMS status vocabulary onto the local enum.
// Unknown values fall back to pending so an imported booking is never lost.
func MapRemoteStatus(remote string) Status {
	switch remote {
	case "confirmed":
		return StatusConfirmed
	case "checked_in", "in_house":
		return StatusCheckedIn
	case "checked_out":
		return StatusCheckedOut
	case "canceled", "cancelled":
		return StatusCancelled
	case "no_show":
		return StatusNoShow
	default:
		return StatusPending
	}
}
