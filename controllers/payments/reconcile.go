package controllers

import (
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
)

// reconcileOutcome is the decision for one verified callback: what the
// payment becomes and whether the order moves with it.
type reconcileOutcome struct {
	// PaymentStatus is the status to persist on the payment.
	PaymentStatus string
	// OrderStatus is the new order status, empty when the order is untouched.
	OrderStatus string
	// Replay marks an identical callback for an already verified payment;
	// the whole webhook is a no-op answered with success.
	Replay bool
	// Conflict marks a callback whose status diverges from an already
	// verified one. It must be rejected, never applied.
	Conflict bool
}

// reconcile maps a verified gateway status onto the payment/order pair.
// initiated -> {pending, success, failure}; success and failure settle the
// order (processing / cancelled), anything else leaves it alone. Pending is
// not terminal: a verified pending payment may still settle through a later
// callback. Once a payment is verified in a terminal state, same-status
// replays are acknowledged and divergent ones refused.
func reconcile(payment models.Payment, status string) reconcileOutcome {
	if payment.Verified {
		if payment.Status == status {
			return reconcileOutcome{Replay: true}
		}
		if payment.Status != models.PaymentStatusPending {
			return reconcileOutcome{Conflict: true}
		}
	}

	outcome := reconcileOutcome{PaymentStatus: status}
	switch status {
	case models.PaymentStatusSuccess:
		outcome.OrderStatus = models.OrderStatusProcessing
	case models.PaymentStatusFailure:
		outcome.OrderStatus = models.OrderStatusCancelled
	}
	return outcome
}
