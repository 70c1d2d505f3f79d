package controllers

import (
	"testing"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderDetailFilter(t *testing.T) {
	orderID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	t.Run("customer sees only own orders", func(t *testing.T) {
		filter := orderDetailFilter(orderID, callerID, models.UserTypeCustomer)

		assert.Equal(t, orderID, filter["_id"])
		assert.Equal(t, callerID, filter["userId"])
	})

	t.Run("admin sees any order", func(t *testing.T) {
		filter := orderDetailFilter(orderID, callerID, models.UserTypeAdmin)

		assert.Equal(t, orderID, filter["_id"])
		_, scoped := filter["userId"]
		assert.False(t, scoped, "admin lookup must not be scoped to the caller")
	})
}
