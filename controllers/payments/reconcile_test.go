package controllers

import (
	"testing"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"github.com/stretchr/testify/assert"
)

func initiatedPayment() models.Payment {
	return models.Payment{
		TxnID:  "a1b2c3d4e5f6a7b8c9d0",
		Status: models.PaymentStatusInitiated,
	}
}

func TestReconcileSuccessSettlesOrder(t *testing.T) {
	outcome := reconcile(initiatedPayment(), models.PaymentStatusSuccess)

	assert.Equal(t, models.PaymentStatusSuccess, outcome.PaymentStatus)
	assert.Equal(t, models.OrderStatusProcessing, outcome.OrderStatus)
	assert.False(t, outcome.Replay)
	assert.False(t, outcome.Conflict)
}

func TestReconcileFailureCancelsOrder(t *testing.T) {
	outcome := reconcile(initiatedPayment(), models.PaymentStatusFailure)

	assert.Equal(t, models.PaymentStatusFailure, outcome.PaymentStatus)
	assert.Equal(t, models.OrderStatusCancelled, outcome.OrderStatus)
}

func TestReconcilePendingLeavesOrderAlone(t *testing.T) {
	outcome := reconcile(initiatedPayment(), models.PaymentStatusPending)

	assert.Equal(t, models.PaymentStatusPending, outcome.PaymentStatus)
	assert.Empty(t, outcome.OrderStatus)
}

func TestReconcilePendingCanStillSettle(t *testing.T) {
	payment := initiatedPayment()
	payment.Status = models.PaymentStatusPending

	outcome := reconcile(payment, models.PaymentStatusSuccess)
	assert.Equal(t, models.PaymentStatusSuccess, outcome.PaymentStatus)
	assert.Equal(t, models.OrderStatusProcessing, outcome.OrderStatus)
}

func TestReconcileIdenticalReplayIsNoOp(t *testing.T) {
	payment := initiatedPayment()
	payment.Status = models.PaymentStatusSuccess
	payment.Verified = true

	outcome := reconcile(payment, models.PaymentStatusSuccess)
	assert.True(t, outcome.Replay)
	assert.False(t, outcome.Conflict)
	assert.Empty(t, outcome.PaymentStatus)
	assert.Empty(t, outcome.OrderStatus)
}

func TestReconcileDivergentReplayIsConflict(t *testing.T) {
	payment := initiatedPayment()
	payment.Status = models.PaymentStatusSuccess
	payment.Verified = true

	outcome := reconcile(payment, models.PaymentStatusFailure)
	assert.True(t, outcome.Conflict)
	assert.False(t, outcome.Replay)
	assert.Empty(t, outcome.PaymentStatus)
	assert.Empty(t, outcome.OrderStatus)
}

// Pending is not terminal: a later verified callback may still settle it.
func TestReconcileVerifiedPendingCanSettle(t *testing.T) {
	payment := initiatedPayment()
	payment.Status = models.PaymentStatusPending
	payment.Verified = true

	outcome := reconcile(payment, models.PaymentStatusSuccess)
	assert.False(t, outcome.Conflict)
	assert.Equal(t, models.PaymentStatusSuccess, outcome.PaymentStatus)
	assert.Equal(t, models.OrderStatusProcessing, outcome.OrderStatus)
}
