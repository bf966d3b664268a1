// ABOUTME: Tick-window HMAC nonces for state-changing admin actions.
// ABOUTME: Tokens bind an action and user and expire after two half-life ticks.

package nonce

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// DefaultLifetime is how long a token stays valid. Verification
	// accepts the current and previous half-life tick, so a token is
	// good for between one and two half-lives.
	DefaultLifetime = 12 * time.Hour

	tokenLen = 12
)

// Service issues and verifies nonce tokens. One service instance is shared
// per process; tokens from one secret never verify against another.
type Service struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// New creates a nonce service. An empty secret gets a random one, which
// invalidates outstanding tokens on restart; pass a stable secret to keep
// tokens valid across restarts.
func New(secret []byte) *Service {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(fmt.Sprintf("nonce: reading random secret: %v", err))
		}
	}
	return &Service{
		secret:   secret,
		lifetime: DefaultLifetime,
		now:      time.Now,
	}
}

// Issue creates a token for an action and user.
func (s *Service) Issue(action, user string) string {
	return s.tokenAt(s.tick(), action, user)
}

// Verify reports whether a token is valid for the action and user. Tokens
// from the current and previous tick verify; anything older or malformed
// does not. Comparison is constant-time.
func (s *Service) Verify(token, action, user string) bool {
	if token == "" {
		return false
	}
	tick := s.tick()
	for _, t := range []int64{tick, tick - 1} {
		expected := s.tokenAt(t, action, user)
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}

// tick is the current half-life window index.
func (s *Service) tick() int64 {
	half := int64(s.lifetime / 2 / time.Second)
	return s.now().Unix() / half
}

func (s *Service) tokenAt(tick int64, action, user string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, user)
	return hex.EncodeToString(mac.Sum(nil))[:tokenLen]
}
