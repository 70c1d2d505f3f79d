// Package gateway implements the PayU merchant-hosted checkout protocol:
// outbound request hashes for the redirect form and verification of the
// hashes PayU sends back on its server-to-server callback.
package gateway

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// Config holds the merchant credentials and redirect targets. The salt is
// the shared secret that keys both hash sequences.
type Config struct {
	Key        string
	Salt       string
	BaseURL    string
	SuccessURL string
	FailureURL string
}

// Callback is the field subset of a PayU webhook that participates in
// verification.
type Callback struct {
	TxnID       string
	Status      string
	Hash        string
	Email       string
	Firstname   string
	Productinfo string
	Amount      string
}

// RequestHash computes the signature for a payment initiation:
// sha512(key|txnid|amount|productinfo|firstname|email|udf1..udf5|6 empties|salt)
// with all udf fields empty, lower-cased hex.
func (c Config) RequestHash(txnid, amount, productinfo, firstname, email string) string {
	seq := fmt.Sprintf("%s|%s|%s|%s|%s|%s|||||||||||%s",
		c.Key, txnid, amount, productinfo, firstname, email, c.Salt)
	return sha512Hex(seq)
}

// CallbackHash computes the expected signature of an inbound callback. The
// field order is the reverse sequence PayU documents for response hashes.
func (c Config) CallbackHash(cb Callback) string {
	seq := fmt.Sprintf("%s|%s|||||||||||%s|%s|%s|%s|%s|%s",
		c.Salt, cb.Status, cb.Email, cb.Firstname, cb.Productinfo, cb.Amount, cb.TxnID, c.Key)
	return sha512Hex(seq)
}

// VerifyCallback recomputes the callback hash and compares it to the
// received one, case-insensitively and in constant time.
func (c Config) VerifyCallback(cb Callback) bool {
	expected := c.CallbackHash(cb)
	received := strings.ToLower(cb.Hash)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}

func sha512Hex(seq string) string {
	sum := sha512.Sum512([]byte(seq))
	return hex.EncodeToString(sum[:])
}
