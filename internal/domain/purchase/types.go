package purchase

import "commerce-order-core/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusRefunded  Status = "REFUNDED"
)

var ErrUnknownStatus = errs.New("unknown purchase status")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRefunded:
		return true
	default:
		return false
	}
}

// PENDING -> COMPLETED -> REFUNDED. REFUNDED is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusCompleted
	case StatusCompleted:
		return next == StatusRefunded
	default:
		return false
	}
}

func (s Status) IsInitial() bool {
	return s == StatusPending || s == StatusCompleted
}
