package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	Key:  "testkey",
	Salt: "testsalt",
}

func TestRequestHashGoldenValue(t *testing.T) {
	got := testConfig.RequestHash("abc123", "100.00", "Order #1", "Jane", "jane@example.com")

	// sha512("testkey|abc123|100.00|Order #1|Jane|jane@example.com|||||||||||testsalt")
	want := "6ed2f7a4a2dc436692127bb9034caed4bd9ab2c648f3b50d070a27b110ff78714ebd959f6f50eef1cbf259d95e9010563b27d3d06ebb0eaebf65826129603c14"
	require.Equal(t, want, got)
	assert.Equal(t, strings.ToLower(got), got, "hash must be lower-case hex")
}

func TestCallbackHashGoldenValue(t *testing.T) {
	cb := Callback{
		TxnID:       "abc123",
		Status:      "success",
		Email:       "jane@example.com",
		Firstname:   "Jane",
		Productinfo: "Order #1",
		Amount:      "100.00",
	}

	// sha512("testsalt|success|||||||||||jane@example.com|Jane|Order #1|100.00|abc123|testkey")
	want := "6a3456745badd16f4e08b372e820196ca69e0cdc4336332c25176d61207b5eb57a2fdc32e4c56cb3d0766f7a35429ae442ca76e5a566723acfeab9b0b8ccad14"
	assert.Equal(t, want, testConfig.CallbackHash(cb))
}

func TestVerifyCallback(t *testing.T) {
	cb := Callback{
		TxnID:       "abc123",
		Status:      "success",
		Email:       "jane@example.com",
		Firstname:   "Jane",
		Productinfo: "Order #1",
		Amount:      "100.00",
	}

	t.Run("matching hash", func(t *testing.T) {
		cb.Hash = testConfig.CallbackHash(cb)
		assert.True(t, testConfig.VerifyCallback(cb))
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		cb.Hash = strings.ToUpper(testConfig.CallbackHash(cb))
		assert.True(t, testConfig.VerifyCallback(cb))
	})

	t.Run("tampered status", func(t *testing.T) {
		cb.Hash = testConfig.CallbackHash(cb)
		forged := cb
		forged.Status = "failure"
		assert.False(t, testConfig.VerifyCallback(forged))
	})

	t.Run("tampered amount", func(t *testing.T) {
		cb.Hash = testConfig.CallbackHash(cb)
		forged := cb
		forged.Amount = "1.00"
		assert.False(t, testConfig.VerifyCallback(forged))
	})

	t.Run("wrong salt", func(t *testing.T) {
		cb.Hash = testConfig.CallbackHash(cb)
		other := Config{Key: "testkey", Salt: "othersalt"}
		assert.False(t, other.VerifyCallback(cb))
	})

	t.Run("empty hash", func(t *testing.T) {
		blank := cb
		blank.Hash = ""
		assert.False(t, testConfig.VerifyCallback(blank))
	})
}
