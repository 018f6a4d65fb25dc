package refund

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const StatusApproved Status = "APPROVED"

func (s Status) String() string { return string(s) }

type Refund struct {
	id         uuid.UUID
	purchaseID uuid.UUID
	reason     Reason
	status     Status
	createdAt  time.Time
}

// NewRefund builds an unsaved, approved refund for the given purchase.
func NewRefund(purchaseID uuid.UUID, reason Reason, now time.Time) *Refund {
	return &Refund{
		purchaseID: purchaseID,
		reason:     reason,
		status:     StatusApproved,
		createdAt:  now,
	}
}

func Reconstruct(id, purchaseID uuid.UUID, reason Reason, status Status, createdAt time.Time) *Refund {
	return &Refund{
		id:         id,
		purchaseID: purchaseID,
		reason:     reason,
		status:     status,
		createdAt:  createdAt,
	}
}

func (r *Refund) ID() uuid.UUID         { return r.id }
func (r *Refund) PurchaseID() uuid.UUID { return r.purchaseID }
func (r *Refund) Reason() Reason        { return r.reason }
func (r *Refund) Status() Status        { return r.status }
func (r *Refund) CreatedAt() time.Time  { return r.createdAt }
