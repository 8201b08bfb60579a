package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Idempotency headers.
const (
	HeaderRequestID = "X-Request-Id"
	HeaderRequestAt = "X-Request-At"
	HeaderActorID   = "X-Actor-Id"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

var nowUTC = func() time.Time { return time.Now().UTC() }

func buildKey(method, route, actorID, requestID string) string {
	return "idemp:lending:" + strings.ToLower(method) + ":" + route + ":" + actorID + ":" + requestID
}

var (
	reUUID    = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-8][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32   = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reActorID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// normalizeReqID lowercases id and reports whether it is a UUID or 32-hex token.
func normalizeReqID(id string) (string, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	return id, reUUID.MatchString(id) || reHex32.MatchString(id)
}

// parseRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339 with a
// zone. Naive local timestamps are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + HeaderRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 { // ms
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
}
