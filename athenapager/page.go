package athenapager

import "github.com/aws/aws-sdk-go-v2/aws"

// Row is one parsed result row keyed by column name. Cells that are NULL or
// missing from the wire payload map to nil.
type Row map[string]*string

// RowParser converts a raw row into a caller-defined shape. It is applied
// once per row in page order; an error aborts the page fetch that invoked it.
type RowParser[T any] func(Row) (T, error)

// Page holds one fetched and parsed page of query results.
type Page[T any] struct {
	// Rows in service response order.
	Rows []T

	// NextToken is the continuation token for the following page, or nil
	// when this page is the last.
	NextToken *string

	// RowCount always equals len(Rows).
	RowCount int
}

// HasNextPage reports whether the service indicated more pages remain.
// Both a nil and an empty token mean the current page is the last.
func (p *Page[T]) HasNextPage() bool {
	return p != nil && aws.ToString(p.NextToken) != ""
}
