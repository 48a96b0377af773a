package paycycle

import "sync/atomic"

// FetchGuard discards stale list responses. Each fetch takes a token from
// Next; when the response arrives, Latest reports whether a newer fetch has
// started in the meantime. Safe for concurrent use.
//
//	token := guard.Next()
//	res, err := client.ListInvoices(ctx, filter)
//	if !guard.Latest(token) {
//		return // a newer fetch superseded this one
//	}
type FetchGuard struct {
	counter atomic.Uint64
}

// Next starts a new fetch and returns its token. All earlier tokens become
// stale immediately.
func (g *FetchGuard) Next() uint64 {
	return g.counter.Add(1)
}

// Latest reports whether token still identifies the most recent fetch.
func (g *FetchGuard) Latest(token uint64) bool {
	return g.counter.Load() == token
}
