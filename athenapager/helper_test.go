package athenapager

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// fakeResultsClient serves canned GetQueryResults pages keyed by execution
// id and continuation token, recording every request it receives.
type fakeResultsClient struct {
	pages map[string]*athena.GetQueryResultsOutput
	errs  map[string]error
	calls []*athena.GetQueryResultsInput
}

func newFakeResultsClient() *fakeResultsClient {
	return &fakeResultsClient{
		pages: map[string]*athena.GetQueryResultsOutput{},
		errs:  map[string]error{},
	}
}

func (f *fakeResultsClient) GetQueryResults(_ context.Context, in *athena.GetQueryResultsInput, _ ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error) {
	f.calls = append(f.calls, in)
	key := pageKey(aws.ToString(in.QueryExecutionId), aws.ToString(in.NextToken))
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	out, ok := f.pages[key]
	if !ok {
		return nil, fmt.Errorf("no canned page for %s", key)
	}
	return out, nil
}

func (f *fakeResultsClient) addPage(queryID, token string, out *athena.GetQueryResultsOutput) {
	f.pages[pageKey(queryID, token)] = out
}

func (f *fakeResultsClient) addErr(queryID, token string, err error) {
	f.errs[pageKey(queryID, token)] = err
}

func pageKey(queryID, token string) string { return queryID + "|" + token }

// resultSet builds a wire result set. withHeader prepends the header row
// Athena places at the top of a first page.
func resultSet(cols []string, withHeader bool, data ...[]string) *types.ResultSet {
	ci := make([]types.ColumnInfo, len(cols))
	for i, c := range cols {
		ci[i] = types.ColumnInfo{Name: aws.String(c), Type: aws.String("varchar")}
	}
	var rows []types.Row
	if withHeader {
		rows = append(rows, wireRow(cols))
	}
	for _, d := range data {
		rows = append(rows, wireRow(d))
	}
	return &types.ResultSet{
		ResultSetMetadata: &types.ResultSetMetadata{ColumnInfo: ci},
		Rows:              rows,
	}
}

func wireRow(vals []string) types.Row {
	data := make([]types.Datum, len(vals))
	for i, v := range vals {
		data[i] = types.Datum{VarCharValue: aws.String(v)}
	}
	return types.Row{Data: data}
}

func output(rs *types.ResultSet, nextToken string) *athena.GetQueryResultsOutput {
	out := &athena.GetQueryResultsOutput{ResultSet: rs}
	if nextToken != "" {
		out.NextToken = aws.String(nextToken)
	}
	return out
}
