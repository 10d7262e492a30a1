package commands

import (
	"flag"

	"go.uber.org/zap"

	"github.com/lakequery/athena-pager-go/athenapager"
	"github.com/lakequery/athena-pager-go/internal/devcli"
)

// RunRows streams every row of a result set across pages. With -limit the
// stream is abandoned early, which stops page fetching as well.
func RunRows(args []string) error {
	fs := flag.NewFlagSet("rows", flag.ContinueOnError)
	execID := fs.String("execution-id", "", "Completed query execution ID (required)")
	limit := fs.Int("limit", 0, "Stop after this many rows (0 = all)")
	asJSON := fs.Bool("json", false, "Print one JSON object per row instead of a table")
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

	identity := func(r athenapager.Row) (athenapager.Row, error) { return r, nil }

	var buffered []athenapager.Row
	n := 0
	for row, err := range athenapager.Rows(ctx, pager, *execID, identity) {
		if err != nil {
			return err
		}
		if *asJSON {
			devcli.PrintJSON(row)
		} else {
			buffered = append(buffered, row)
		}
		n++
		if *limit > 0 && n >= *limit {
			break
		}
	}
	log.Debug("rows streamed", zap.String("execution_id", *execID), zap.Int("rows", n))

	if !*asJSON {
		devcli.PrintRows(buffered)
	}
	return nil
}
