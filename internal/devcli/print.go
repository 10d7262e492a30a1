package devcli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/cheynewallace/tabby"

	"github.com/lakequery/athena-pager-go/athenapager"
)

// PrintJSON prints a value as pretty-printed JSON.
func PrintJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// PrintRows renders raw rows as an aligned table. Columns are ordered by
// name so output stays stable across runs; NULL cells render as "NULL".
func PrintRows(rows []athenapager.Row) {
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return
	}
	cols := make([]string, 0, len(rows[0]))
	for c := range rows[0] {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	t := tabby.New()
	t.AddHeader(toAny(cols)...)
	for _, row := range rows {
		vals := make([]string, len(cols))
		for i, c := range cols {
			if row[c] == nil {
				vals[i] = "NULL"
			} else {
				vals[i] = aws.ToString(row[c])
			}
		}
		t.AddLine(toAny(vals)...)
	}
	t.Print()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// PrintGlobalUsage renders the top-level usage text.
func PrintGlobalUsage(bin string) {
	fmt.Println(bin + ` - dev CLI for paging Athena query results

USAGE:
  ` + bin + ` <command> [flags]

The query execution must already have completed; this tool never starts
queries and never waits for one to finish.

GLOBAL FLAGS (env defaults shown in []):
  -region        	AWS region [` + getenvDefault(EnvRegion, "AWS chain") + `]
  -profile       	Shared config profile [` + getenvDefault(EnvProfile, "AWS chain") + `]
  -access-key    	Static access key (with -secret-key)
  -secret-key    	Static secret key
  -session-token 	Static session token
  -max           	Rows requested per page [` + getenvDefault(EnvMaxResults, "1000") + `]
  -timeout       	Command timeout seconds [` + getenvDefault(EnvTimeoutSec, "60") + `]
  -v             	Verbose diagnostics

COMMANDS:
  page    	-execution-id <id> [-token t] [-json]     Fetch a single page
  rows    	-execution-id <id> [-limit n] [-json]     Stream all rows across pages
  columns 	-execution-id <id>                        Show result column metadata

EXAMPLES:
  ` + bin + ` page -execution-id 7fa3be5e-... -max 25
  ` + bin + ` page -execution-id 7fa3be5e-... -token "ARi7..." -json
  ` + bin + ` rows -execution-id 7fa3be5e-... -limit 100
  ` + bin + ` columns -execution-id 7fa3be5e-...
`)
}

// Panicf is a small helper for required flag validation in subcommands.
func Panicf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
