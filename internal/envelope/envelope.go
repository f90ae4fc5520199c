// Package envelope signs and verifies the authenticated payload containers
// exchanged with the settlement worker. Every request and response body is a
// three-part token: base64url(JSON payload), base64url(big-endian unix
// seconds), base64url(HMAC-SHA256 signature over the first two parts).
package envelope

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformed marks a token that does not parse as an envelope at all.
	ErrMalformed = errors.New("malformed envelope")
	// ErrBadSignature marks a token whose signature does not verify.
	ErrBadSignature = errors.New("bad envelope signature")
	// ErrExpired marks a verified token outside the validity window.
	ErrExpired = errors.New("expired envelope")
)

const (
	// derivationSalt separates envelope keys from any other use of the
	// deployment secret. Changing it breaks the wire contract.
	derivationSalt = "poolledger.envelope.v1"

	separator = "."

	// futureSkew bounds how far ahead of the ledger clock a timestamp may
	// sit before the token is treated as outside its validity window.
	futureSkew = time.Minute
)

// Codec seals and opens signed, time-bound payloads with a shared secret.
type Codec struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// New builds a Codec from the shared deployment secret. maxAge bounds the
// replay window of a sealed token.
func New(secret string, maxAge time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("envelope secret is required")
	}
	if maxAge <= 0 {
		return nil, errors.New("envelope max age must be positive")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(derivationSalt))

	return &Codec{
		key:    mac.Sum(nil),
		maxAge: maxAge,
		now:    time.Now,
	}, nil
}

// Seal serializes payload and wraps it in a signed token stamped with the
// current time.
func (c *Codec) Seal(payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(c.now().Unix()))

	enc := base64.RawURLEncoding
	signed := enc.EncodeToString(body) + separator + enc.EncodeToString(ts[:])
	return []byte(signed + separator + enc.EncodeToString(c.sign([]byte(signed)))), nil
}

// Open verifies a token's signature and validity window and returns the raw
// payload. The signature is always checked before the timestamp so a tampered
// timestamp can never surface as anything but ErrBadSignature.
func (c *Codec) Open(token []byte) (json.RawMessage, error) {
	parts := bytes.Split(token, []byte(separator))
	if len(parts) != 3 {
		return nil, ErrMalformed
	}

	signed := token[:len(parts[0])+1+len(parts[1])]
	enc := base64.RawURLEncoding

	sig, err := enc.AppendDecode(nil, parts[2])
	if err != nil || !hmac.Equal(sig, c.sign(signed)) {
		return nil, ErrBadSignature
	}

	rawTS, err := enc.AppendDecode(nil, parts[1])
	if err != nil || len(rawTS) != 8 {
		return nil, ErrMalformed
	}
	issued := time.Unix(int64(binary.BigEndian.Uint64(rawTS)), 0)
	now := c.now()
	if now.Sub(issued) > c.maxAge || issued.Sub(now) > futureSkew {
		return nil, ErrExpired
	}

	body, err := enc.AppendDecode(nil, parts[0])
	if err != nil || !json.Valid(body) {
		return nil, ErrMalformed
	}
	return json.RawMessage(body), nil
}

func (c *Codec) sign(signed []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(signed)
	return mac.Sum(nil)
}
