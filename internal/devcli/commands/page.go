package commands

import (
	"flag"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"

	"github.com/lakequery/athena-pager-go/internal/devcli"
)

// RunPage fetches and prints a single result page.
func RunPage(args []string) error {
	fs := flag.NewFlagSet("page", flag.ContinueOnError)
	execID := fs.String("execution-id", "", "Completed query execution ID (required)")
	token := fs.String("token", "", "Continuation token from a previous page")
	asJSON := fs.Bool("json", false, "Print the page as JSON instead of a table")
	g := devcli.ParseGlobalFlagsArgs(fs, args)

	defer func() {
		if r := recover(); r != nil {
			devcli.Panicf("missing required flag: %v", r)
		}
	}()
	devcli.MustNonEmpty(*execID, "-execution-id")

	ctx, cancel := devcli.Ctx(g)
	defer cancel()
	log := devcli.Logger(g)
	defer log.Sync()

	client, err := devcli.NewAthena(ctx, g)
	if err != nil {
		return err
	}
	pager := devcli.NewPager(client, g)

	var next *string
	if *token != "" {
		next = aws.String(*token)
	}
	page, err := pager.FetchPage(ctx, *execID, next)
	if err != nil {
		return err
	}
	log.Debug("page fetched",
		zap.String("execution_id", *execID),
		zap.Int("rows", page.RowCount),
		zap.Bool("more", page.HasNextPage()),
	)

	if *asJSON {
		devcli.PrintJSON(page)
	} else {
		devcli.PrintRows(page.Rows)
		if page.HasNextPage() {
			fmt.Printf("\nnext token: %s\n", aws.ToString(page.NextToken))
		}
	}
	return nil
}
