package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"

	signature := sign("order_abc", "pay_xyz", secret)
	assert.True(t, VerifySignature("order_abc", "pay_xyz", signature, secret))
}

func TestVerifySignatureMismatch(t *testing.T) {
	const secret = "test_key_secret"

	signature := sign("order_abc", "pay_xyz", secret)

	assert.False(t, VerifySignature("order_abc", "pay_other", signature, secret))
	assert.False(t, VerifySignature("order_other", "pay_xyz", signature, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", signature, "wrong_secret"))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "not-a-signature", secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "", secret))
}
