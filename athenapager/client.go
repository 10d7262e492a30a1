// Package athenapager pages through the results of a completed Amazon
// Athena query execution. It wraps the GetQueryResults continuation-token
// protocol with single-page fetches, lazy page and row iterators, and a
// result-set parser that strips Athena's leading header row.
//
// The package never starts queries and never waits for them to finish; it
// expects an execution id whose query has already reached SUCCEEDED.
// Transport concerns (credentials, retries, throttling, timeouts) belong to
// the Athena client supplied by the caller.
package athenapager

import (
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// QueryResultsClient is the slice of the Athena API the pager consumes.
// *athena.Client satisfies it; tests substitute a fake.
type QueryResultsClient = athena.GetQueryResultsAPIClient

// New constructs a Pager bound to the given client. The client is borrowed,
// not owned; its lifetime is managed by the caller. Options override the
// page-size and result-format defaults.
func New(client QueryResultsClient, opts ...Option) *Pager {
	p := &Pager{
		client:     client,
		parser:     NewResultSetParser(),
		maxResults: DefaultMaxResults,
		resultType: types.QueryResultTypeDataRows,
	}
	for _, f := range opts {
		f(p)
	}
	return p
}
