package athenapager

import (
	"context"
	"iter"
)

// Pages returns a lazy sequence of raw-row pages for one query execution,
// starting from the first page and chaining continuation tokens. At least
// one page is always yielded, even when the result set is empty. A fetch
// error is yielded once with a nil page and ends the sequence.
//
// Production is demand-driven: the fetch for page k+1 is not issued until
// the consumer has received page k, and breaking out of the range loop
// issues no further fetches. The sequence is single-use; ranging again
// starts over from the first page.
func (p *Pager) Pages(ctx context.Context, queryExecutionID string) iter.Seq2[*Page[Row], error] {
	return pageSeq(func(token *string) (*Page[Row], error) {
		return p.FetchPage(ctx, queryExecutionID, token)
	})
}

// PagesAs is Pages with rows converted through parse. See Pages for the
// iteration contract.
func PagesAs[T any](ctx context.Context, p *Pager, queryExecutionID string, parse RowParser[T]) iter.Seq2[*Page[T], error] {
	return pageSeq(func(token *string) (*Page[T], error) {
		return FetchPageAs(ctx, p, queryExecutionID, parse, token)
	})
}

// Rows flattens PagesAs into a lazy sequence of converted rows, in page
// order then row order within each page. At most one page of rows is held
// in memory at a time. An error from a fetch or from parse is yielded once
// with a zero value and ends the sequence.
func Rows[T any](ctx context.Context, p *Pager, queryExecutionID string, parse RowParser[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for page, err := range PagesAs(ctx, p, queryExecutionID, parse) {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, row := range page.Rows {
				if !yield(row, nil) {
					return
				}
			}
		}
	}
}

// pageSeq drives fetch until a page without a continuation token has been
// yielded. Termination is evaluated after the yield, never before the first
// fetch, which is what guarantees the at-least-one-page behavior.
func pageSeq[T any](fetch func(*string) (*Page[T], error)) iter.Seq2[*Page[T], error] {
	return func(yield func(*Page[T], error) bool) {
		var token *string
		for {
			page, err := fetch(token)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(page, nil) {
				return
			}
			if !page.HasNextPage() {
				return
			}
			token = page.NextToken
		}
	}
}
