package addressController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDefaultUnsetFilter(t *testing.T) {
	owner := primitive.NewObjectID()

	t.Run("new default address", func(t *testing.T) {
		filter := defaultUnsetFilter(owner, nil)

		assert.Equal(t, owner, filter["userId"])
		assert.Equal(t, true, filter["isDefault"])
		_, hasExclusion := filter["_id"]
		assert.False(t, hasExclusion, "a fresh insert unsets every existing default")
	})

	t.Run("editing an existing address", func(t *testing.T) {
		edited := primitive.NewObjectID()
		filter := defaultUnsetFilter(owner, &edited)

		assert.Equal(t, owner, filter["userId"])
		assert.Equal(t, true, filter["isDefault"])

		exclusion, ok := filter["_id"].(bson.M)
		require.True(t, ok, "edited address must be excluded from the unset")
		assert.Equal(t, edited, exclusion["$ne"])
	})
}
