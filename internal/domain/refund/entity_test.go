//go:build unit

package refund_test

import (
	"strings"
	"testing"
	"time"

	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReason(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		invalid bool
	}{
		{name: "plain reason", in: "damaged item", want: "damaged item"},
		{name: "trimmed", in: "  wrong size \n", want: "wrong size"},
		{name: "max length", in: strings.Repeat("a", refund.MaxReasonLength), want: strings.Repeat("a", refund.MaxReasonLength)},
		{name: "multibyte counted by character", in: strings.Repeat("返", refund.MaxReasonLength), want: strings.Repeat("返", refund.MaxReasonLength)},
		{name: "empty", in: "", invalid: true},
		{name: "whitespace only", in: " \t ", invalid: true},
		{name: "too long", in: strings.Repeat("a", refund.MaxReasonLength+1), invalid: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := refund.NewReason(c.in)
			if c.invalid {
				assert.True(t, errs.Is(err, errs.ErrInvalidRefundReason))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, r.String())
		})
	}
}

func TestNewRefund(t *testing.T) {
	purchaseID := uuid.New()
	now := time.Now().UTC()
	reason, err := refund.NewReason("changed my mind")
	require.NoError(t, err)

	r := refund.NewRefund(purchaseID, reason, now)

	assert.Equal(t, uuid.Nil, r.ID())
	assert.Equal(t, purchaseID, r.PurchaseID())
	assert.Equal(t, refund.StatusApproved, r.Status())
	assert.Equal(t, "changed my mind", r.Reason().String())
	assert.Equal(t, now, r.CreatedAt())
}
