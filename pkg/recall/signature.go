package recall

import "crypto/hmac"

// VerifyWebhookSecret compares the secret presented on a webhook request
// against the configured shared secret in constant time
func VerifyWebhookSecret(presented, expected string) bool {
	if expected == "" {
		return false
	}
	return hmac.Equal([]byte(presented), []byte(expected))
}
