package controllers

import (
	"testing"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestShouldNotifyRestock(t *testing.T) {
	cases := []struct {
		name     string
		oldStock int
		newStock int
		want     bool
	}{
		{"zero to positive", 0, 5, true},
		{"positive to higher", 2, 10, true},
		{"unchanged positive", 5, 5, false},
		{"unchanged zero", 0, 0, false},
		{"positive to zero", 5, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldNotifyRestock(tc.oldStock, tc.newStock))
		})
	}
}

func TestRestockRecipients(t *testing.T) {
	sub := func(notified bool) models.StockNotification {
		return models.StockNotification{
			Id:         primitive.NewObjectID(),
			UserID:     primitive.NewObjectID(),
			IsNotified: notified,
		}
	}

	fresh1 := sub(false)
	done := sub(true)
	fresh2 := sub(false)

	recipients, markIds := restockRecipients([]models.StockNotification{fresh1, done, fresh2})

	require.Len(t, recipients, 2)
	require.Len(t, markIds, 2)
	assert.Equal(t, fresh1.Id, recipients[0].Id)
	assert.Equal(t, fresh2.Id, recipients[1].Id)
	assert.Equal(t, []primitive.ObjectID{fresh1.Id, fresh2.Id}, markIds)
}

// Once every subscription is marked, a later dispatch for the same product
// has nobody left to notify.
func TestRestockRecipientsAllNotified(t *testing.T) {
	subs := []models.StockNotification{
		{Id: primitive.NewObjectID(), IsNotified: true},
		{Id: primitive.NewObjectID(), IsNotified: true},
	}

	recipients, markIds := restockRecipients(subs)
	assert.Empty(t, recipients)
	assert.Empty(t, markIds)
}
