// Package webhooksig verifies Svix-style webhook signatures, the scheme
// used by Clerk for its user sync events. The signed content is
// "{msg-id}.{timestamp}.{payload}" HMAC-SHA256'd with the base64 portion
// of the "whsec_..." endpoint secret.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSecret    = errors.New("invalid webhook secret")
	ErrMissingHeaders   = errors.New("missing webhook signature headers")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
)

const timestampTolerance = 5 * time.Minute

type Verifier struct {
	key []byte
	now func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	secret = strings.TrimPrefix(secret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, ErrInvalidSecret
	}
	return &Verifier{key: key, now: time.Now}, nil
}

// Verify checks the svix-id / svix-timestamp / svix-signature header trio
// against the raw request payload.
func (v *Verifier) Verify(payload []byte, msgID, timestamp, signatures string) error {
	if msgID == "" || timestamp == "" || signatures == "" {
		return ErrMissingHeaders
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMissingHeaders
	}
	age := v.now().Sub(time.Unix(ts, 0))
	if age > timestampTolerance || age < -timestampTolerance {
		return ErrStaleTimestamp
	}

	expected := v.Sign(msgID, timestamp, payload)

	// The header may carry several space-delimited "v1,<base64>" entries
	// (e.g. after a secret rotation); any match passes.
	for _, part := range strings.Split(signatures, " ") {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// Sign computes the base64 v1 signature for the given message.
func (v *Verifier) Sign(msgID, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
