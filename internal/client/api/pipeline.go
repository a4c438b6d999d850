package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/client/token"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

// Doer is the transport the pipeline wraps. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// RefreshFunc exchanges the current credential for a fresh one. It must talk
// to the transport directly, not through the pipeline, or a 401 during
// refresh would recurse.
type RefreshFunc func(ctx context.Context, current string) (string, error)

// Pipeline is the authenticated request decorator. It attaches the bearer
// credential to every outbound call, detects authorization expiry, performs
// at most one refresh-and-resend per logical request, and escalates to a
// session-expired signal when recovery fails.
//
// Per-request state machine:
//
//	INITIAL -> SENT -> (OK | UNAUTHORIZED)
//	UNAUTHORIZED -> REFRESHING -> (RETRIED_OK | LOGGED_OUT)
//
// The one-retry invariant is structural: the retried request is sent on the
// bare transport path below, which cannot re-enter the refresh branch.
// Concurrent requests refresh independently; there is no cross-request
// deduplication.
type Pipeline struct {
	base      Doer
	tokens    token.Store
	refresh   RefreshFunc
	onExpired func()
}

// NewPipeline composes the decorator around base. refresh may not be nil.
func NewPipeline(base Doer, tokens token.Store, refresh RefreshFunc) *Pipeline {
	return &Pipeline{base: base, tokens: tokens, refresh: refresh}
}

// SetSessionExpiredHandler registers the navigation escalation invoked once
// per unrecoverable auth failure, after the credential has been cleared.
func (p *Pipeline) SetSessionExpiredHandler(fn func()) {
	p.onExpired = fn
}

// Do sends the request with the stored credential attached and resolves the
// response into either a successful *http.Response or an error:
//
//   - transport failures propagate unchanged;
//   - a 401 on a request that carried a credential triggers one refresh and
//     one resend; if the refresh fails the credential is cleared, the
//     session-expired handler fires, and the call fails with an error
//     matching ErrSessionExpired that wraps the refresh error;
//   - 403 never triggers a refresh;
//   - any remaining 4xx/5xx is normalized into *APIError carrying the
//     backend's detail message when present.
//
// The caller owns the body of a returned response.
func (p *Pipeline) Do(req *http.Request) (*http.Response, error) {
	tok, err := p.tokens.Load()
	authenticated := err == nil
	if authenticated {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	} else {
		req.Header.Del(common.AuthorizationHeaderName)
	}

	resp, err := p.base.Do(req)
	if err != nil {
		return nil, err
	}

	// A 401 without a stored credential cannot be recovered by refreshing;
	// it falls through to normalization like any other error status.
	if resp.StatusCode != http.StatusUnauthorized || !authenticated {
		return normalize(resp)
	}

	discard(resp)

	fresh, err := p.refresh(req.Context(), tok)
	if err != nil {
		_ = p.tokens.Clear()
		if p.onExpired != nil {
			p.onExpired()
		}
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	if err := p.tokens.Save(fresh); err != nil {
		return nil, fmt.Errorf("persist refreshed credential: %w", err)
	}

	retry, err := cloneRequest(req)
	if err != nil {
		return nil, err
	}
	retry.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+fresh)

	resp, err = p.base.Do(retry)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// cloneRequest rebuilds the original request for the single resend. The body
// is re-created through GetBody, which net/http populates for buffered
// request bodies.
func cloneRequest(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		retry.Body = body
	}
	return retry, nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// normalize passes 2xx/3xx responses through and converts error statuses
// into *APIError, surfacing the backend detail message verbatim when the
// body carries one.
func normalize(resp *http.Response) (*http.Response, error) {
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	_ = resp.Body.Close()

	return nil, apiErr
}

// discard drains and closes a response body so the underlying connection can
// be reused for the retried request.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
}
