package athenapager

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// Pager fetches result pages for completed query executions. It owns
// exactly one ResultSetParser at a time; that parser is the pager's only
// mutable state and is scoped to a single query execution. A Pager is not
// safe for concurrent use across different queries — use one Pager per
// in-flight query, or strictly sequential reuse.
type Pager struct {
	client QueryResultsClient

	maxResults int32
	resultType types.QueryResultType

	// parser state for the current query epoch.
	parser      *ResultSetParser
	lastQueryID string
}

// FetchPage issues one GetQueryResults call and parses the response into
// raw rows. nextToken must be nil for the first page, or a token previously
// returned by the service for the same execution id. Service and parser
// errors are propagated unchanged.
func (p *Pager) FetchPage(ctx context.Context, queryExecutionID string, nextToken *string) (*Page[Row], error) {
	out, err := p.getResults(ctx, queryExecutionID, nextToken)
	if err != nil {
		return nil, err
	}
	rows := p.parser.ParseResultSet(out.ResultSet)
	return &Page[Row]{Rows: rows, NextToken: out.NextToken, RowCount: len(rows)}, nil
}

// FetchPageAs is FetchPage with the identity conversion replaced by parse.
// parse runs once per row in page order; its first error aborts the fetch.
// A package-level function because Go methods cannot introduce type
// parameters.
func FetchPageAs[T any](ctx context.Context, p *Pager, queryExecutionID string, parse RowParser[T], nextToken *string) (*Page[T], error) {
	out, err := p.getResults(ctx, queryExecutionID, nextToken)
	if err != nil {
		return nil, err
	}
	rows, err := ParseResultSetAs(p.parser, out.ResultSet, parse)
	if err != nil {
		return nil, err
	}
	return &Page[T]{Rows: rows, NextToken: out.NextToken, RowCount: len(rows)}, nil
}

// Reset discards the parser state of the current query epoch. Call it
// before reusing the pager for a logically new query under an execution id
// it has already seen; switching to a different execution id resets the
// epoch automatically.
func (p *Pager) Reset() {
	p.parser = NewResultSetParser()
	p.lastQueryID = ""
}

// getResults builds and issues the wire request. A change of execution id
// starts a fresh parser epoch so one query's header state never leaks into
// the next.
func (p *Pager) getResults(ctx context.Context, queryExecutionID string, nextToken *string) (*athena.GetQueryResultsOutput, error) {
	if queryExecutionID != p.lastQueryID {
		p.parser = NewResultSetParser()
		p.lastQueryID = queryExecutionID
	}
	return p.client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
		QueryExecutionId: aws.String(queryExecutionID),
		MaxResults:       aws.Int32(p.maxResults),
		NextToken:        nextToken,
		QueryResultType:  p.resultType,
	})
}
