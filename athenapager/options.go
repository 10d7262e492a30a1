package athenapager

import "github.com/aws/aws-sdk-go-v2/service/athena/types"

// DefaultMaxResults is the per-page row cap requested when no override is
// set. The service may return fewer rows than requested.
const DefaultMaxResults int32 = 1000

// Option customizes a Pager at construction time.
type Option func(*Pager)

// WithMaxResults sets the per-page row cap. Non-positive values are ignored.
func WithMaxResults(n int32) Option {
	return func(p *Pager) {
		if n > 0 {
			p.maxResults = n
		}
	}
}

// WithResultType sets the requested result format. DATA_ROWS is the default
// and the only format the parser currently understands.
func WithResultType(t types.QueryResultType) Option {
	return func(p *Pager) { p.resultType = t }
}
