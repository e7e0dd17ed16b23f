// Package telegram verifies and parses Telegram Mini App initData payloads.
//
// initData is a URL-encoded query string signed by Telegram's servers. The
// signature covers every field except "hash": the remaining fields, sorted
// by key and rendered as "key=value" lines joined with "\n", are HMAC-signed
// with a key derived from the bot token.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var (
	ErrHashMissing      = errors.New("initData has no hash field")
	ErrInvalidSignature = errors.New("initData signature mismatch")
	ErrUserMissing      = errors.New("initData has no user field")
)

// WebAppUser is the profile Telegram embeds in the "user" field of initData.
type WebAppUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Verify checks that initData carries a valid Telegram signature for the
// given bot token. Any parse failure or mismatch fails closed with an error.
func Verify(initData, botToken string) error {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return fmt.Errorf("failed to parse initData: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return ErrHashMissing
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key := range values {
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	// Signing key: HMAC-SHA256 over the bot token keyed by "WebAppData".
	keyMAC := hmac.New(sha256.New, []byte("WebAppData"))
	keyMAC.Write([]byte(botToken))
	signingKey := keyMAC.Sum(nil)

	mac := hmac.New(sha256.New, signingKey)
	mac.Write([]byte(checkString))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(hash)
	if err != nil {
		return ErrInvalidSignature
	}
	if !hmac.Equal(expected, provided) {
		return ErrInvalidSignature
	}
	return nil
}

// ParseUser extracts the embedded user profile from initData. It does not
// verify the signature; call Verify first.
func ParseUser(initData string) (*WebAppUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse initData: %w", err)
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrUserMissing
	}

	var user WebAppUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user field: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("user field has no id")
	}
	return &user, nil
}
