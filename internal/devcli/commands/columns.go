package commands

import (
	"flag"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/cheynewallace/tabby"

	"github.com/lakequery/athena-pager-go/internal/devcli"
)

// RunColumns prints the column metadata of a result set. It asks the
// service for a single row since only the first page's metadata is needed.
func RunColumns(args []string) error {
	fs := flag.NewFlagSet("columns", flag.ContinueOnError)
	execID := fs.String("execution-id", "", "Completed query execution ID (required)")
	g := devcli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			devcli.Panicf("missing required flag: %v", r)
		}
	}()
	devcli.MustNonEmpty(*execID, "-execution-id")

	ctx, cancel := devcli.Ctx(g)
	defer cancel()

	client, err := devcli.NewAthena(ctx, g)
	if err != nil {
		return err
	}
	out, err := client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
		QueryExecutionId: aws.String(*execID),
		MaxResults:       aws.Int32(1),
	})
	if err != nil {
		return err
	}

	t := tabby.New()
	t.AddHeader("NAME", "TYPE", "NULLABLE")
	if out.ResultSet != nil && out.ResultSet.ResultSetMetadata != nil {
		for _, ci := range out.ResultSet.ResultSetMetadata.ColumnInfo {
			t.AddLine(aws.ToString(ci.Name), aws.ToString(ci.Type), string(ci.Nullable))
		}
	}
	t.Print()
	return nil
}
