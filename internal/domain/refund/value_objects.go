package refund

import (
	"strings"
	"unicode/utf8"

	"commerce-order-core/internal/pkg/errs"
)

const MaxReasonLength = 500

type Reason struct {
	text string
}

func NewReason(s string) (Reason, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Reason{}, errs.Wrap(errs.ErrInvalidRefundReason, "reason is empty")
	}
	if utf8.RuneCountInString(t) > MaxReasonLength {
		return Reason{}, errs.Wrapf(errs.ErrInvalidRefundReason, "reason exceeds %d characters", MaxReasonLength)
	}
	return Reason{text: t}, nil
}

func (r Reason) String() string { return r.text }
