package athenapager

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// ResultSetParser converts Athena result sets into rows keyed by column
// name. Athena prepends one header row (cell values equal to the column
// names) to the first page of a SELECT result; the parser recognizes and
// drops that row at most once per parser instance, so one instance must not
// be shared across different query executions.
type ResultSetParser struct {
	headerSeen bool
}

// NewResultSetParser returns a parser that has not yet consumed a header row.
func NewResultSetParser() *ResultSetParser {
	return &ResultSetParser{}
}

// ParseResultSet converts every data row of rs into a Row. The first call
// on a parser instance consumes the header row if one is present.
func (rp *ResultSetParser) ParseResultSet(rs *types.ResultSet) []Row {
	cols, data := rp.dataRows(rs)
	rows := make([]Row, 0, len(data))
	for _, r := range data {
		rows = append(rows, rawRow(cols, r))
	}
	return rows
}

// ParseResultSetAs converts every data row of rs through parse, in order.
// The first row that fails aborts the conversion and its error is returned.
// This is a package-level function because Go methods cannot introduce type
// parameters.
func ParseResultSetAs[T any](rp *ResultSetParser, rs *types.ResultSet, parse RowParser[T]) ([]T, error) {
	cols, data := rp.dataRows(rs)
	out := make([]T, 0, len(data))
	for _, r := range data {
		t, err := parse(rawRow(cols, r))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// dataRows applies the header-skip rule and returns the column names along
// with the remaining data rows. The header-seen flag is set by the first
// call that observes a result set, whether or not a header row was
// recognized: DML-style results carry no header, and marking the epoch
// consumed keeps later pages from ever being trimmed.
func (rp *ResultSetParser) dataRows(rs *types.ResultSet) ([]string, []types.Row) {
	if rs == nil {
		return nil, nil
	}
	cols := columnNames(rs.ResultSetMetadata)
	rows := rs.Rows
	if !rp.headerSeen {
		rp.headerSeen = true
		if len(rows) > 0 && isHeaderRow(rows[0], cols) {
			rows = rows[1:]
		}
	}
	return cols, rows
}

func columnNames(md *types.ResultSetMetadata) []string {
	if md == nil {
		return nil
	}
	names := make([]string, len(md.ColumnInfo))
	for i, ci := range md.ColumnInfo {
		names[i] = aws.ToString(ci.Name)
	}
	return names
}

// isHeaderRow reports whether every cell of r equals the corresponding
// column name.
func isHeaderRow(r types.Row, cols []string) bool {
	if len(cols) == 0 || len(r.Data) != len(cols) {
		return false
	}
	for i, d := range r.Data {
		if d.VarCharValue == nil || *d.VarCharValue != cols[i] {
			return false
		}
	}
	return true
}

// rawRow maps one wire row onto the column names. Cells beyond the end of
// the data slice stay nil, matching NULL cells.
func rawRow(cols []string, r types.Row) Row {
	row := make(Row, len(cols))
	for i, name := range cols {
		if i < len(r.Data) {
			row[name] = r.Data[i].VarCharValue
		} else {
			row[name] = nil
		}
	}
	return row
}
