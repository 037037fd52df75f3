package catalog

import "sync/atomic"

// TokenSource issues monotonically increasing request tokens. A caller
// takes a token before starting async work and applies the result only
// if its token is still current — stale responses from superseded
// requests are dropped at the point of use instead of cancelled in
// flight.
type TokenSource struct {
	n atomic.Uint64
}

// Next issues a new token, superseding all earlier ones.
func (t *TokenSource) Next() uint64 {
	return t.n.Add(1)
}

// IsCurrent reports whether tok is still the latest issued token.
func (t *TokenSource) IsCurrent(tok uint64) bool {
	return t.n.Load() == tok
}
