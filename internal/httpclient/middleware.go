package httpclient

import (
	"net/http"

	"github.com/google/uuid"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// middleware wraps a RoundTripper with request-side behavior.
type middleware func(http.RoundTripper) http.RoundTripper

// chain applies middlewares around base; the last middleware sees the
// request first.
func chain(base http.RoundTripper, mws ...middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for _, mw := range mws {
		base = mw(base)
	}
	return base
}

// bearer attaches the stored credential when one exists.
func bearer(c *Client) middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if token := c.token(); token != "" {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			return next.RoundTrip(r)
		})
	}
}

// requestID tags every outgoing request for correlation in logs.
func requestID() middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(r *http.Request) (*http.Response, error) {
			r.Header.Set("X-Request-ID", uuid.NewString())
			return next.RoundTrip(r)
		})
	}
}
