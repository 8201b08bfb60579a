package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"credit-engine/internal/infrastructure/cache"
)

const (
	// Allowed client/server clock skew for X-Request-At.
	maxClockSkew = 10 * time.Minute
	storeTimeout = 2 * time.Second
)

// IdempotencyStore remembers responses per request key.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, e cache.Entry) (bool, error)
	Load(ctx context.Context, key string) (cache.Entry, error)
	Save(ctx context.Context, key string, e cache.Entry, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

func reject(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg, "kind": "idempotency"})
}

// Idempotency guards mutating routes. The key is method + route + actor + request
// id; a repeated request with the same body replays the stored response, one with
// a different body is a conflict. Server errors (5xx) are not remembered so the
// client can retry with the same request id.
func Idempotency(store IdempotencyStore, ttl time.Duration, log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			raw := strings.TrimSpace(req.Header.Get(HeaderRequestID))
			if raw == "" {
				return reject(c, http.StatusBadRequest, "missing "+HeaderRequestID)
			}
			reqID, ok := normalizeReqID(raw)
			if !ok {
				return reject(c, http.StatusBadRequest, "invalid "+HeaderRequestID+" format")
			}

			reqAt, err := parseRequestAt(req.Header.Get(HeaderRequestAt))
			if err != nil {
				return reject(c, http.StatusBadRequest, err.Error())
			}
			now := nowUTC()
			if reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
				return reject(c, http.StatusBadRequest, HeaderRequestAt+" too skewed")
			}

			actorID := strings.TrimSpace(req.Header.Get(HeaderActorID))
			if actorID == "" {
				return reject(c, http.StatusBadRequest, "missing "+HeaderActorID)
			}
			if !reActorID.MatchString(actorID) {
				return reject(c, http.StatusBadRequest, "invalid "+HeaderActorID)
			}

			var body []byte
			if req.Body != nil {
				if body, err = io.ReadAll(req.Body); err != nil {
					return reject(c, http.StatusBadRequest, "unreadable body")
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			bhash := bodyHash(body)

			key := buildKey(req.Method, c.Path(), actorID, reqID)
			entryLog := log.WithFields(logrus.Fields{"idempotency_key": key, "request_id": reqID})

			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			reserved, err := store.Reserve(ctx, key, cache.Entry{
				InProgress:  true,
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   now,
			})
			if err != nil {
				entryLog.WithError(err).Error("idempotency store unavailable")
				return reject(c, http.StatusServiceUnavailable, "idempotency store unavailable")
			}
			if !reserved {
				cur, err := store.Load(ctx, key)
				if err != nil && !errors.Is(err, cache.ErrEntryNotFound) {
					entryLog.WithError(err).Warn("failed to load idempotency entry")
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return reject(c, http.StatusConflict, HeaderRequestID+" reused with different body")
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					entryLog.Debug("replaying stored response")
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return reject(c, http.StatusConflict, "request is already in progress")
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			saveCtx, saveCancel := context.WithTimeout(context.Background(), storeTimeout)
			defer saveCancel()
			if rec.code >= http.StatusInternalServerError {
				if err := store.Release(saveCtx, key); err != nil {
					entryLog.WithError(err).Warn("failed to release idempotency key")
				}
				return nil
			}
			final := cache.Entry{
				Code:        rec.code,
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			}
			if err := store.Save(saveCtx, key, final, ttl); err != nil {
				entryLog.WithError(err).Warn("failed to store idempotent response")
			}
			return nil
		}
	}
}
