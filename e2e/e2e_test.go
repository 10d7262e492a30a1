package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"

	"github.com/lakequery/athena-pager-go/athenapager"
)

// TestE2E_Live pages through a real, already-completed Athena query
// execution. It needs ambient AWS credentials plus:
//
//	ATHENA_PAGER_E2E_EXECUTION_ID  execution id of a SUCCEEDED query
//	ATHENA_PAGER_E2E_REGION        optional region override
func TestE2E_Live(t *testing.T) {
	execID := os.Getenv("ATHENA_PAGER_E2E_EXECUTION_ID")
	if execID == "" {
		t.Skip("set ATHENA_PAGER_E2E_EXECUTION_ID to run live test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	var loadOpts []func(*config.LoadOptions) error
	if region := os.Getenv("ATHENA_PAGER_E2E_REGION"); region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		t.Fatalf("load AWS config: %v", err)
	}

	pager := athenapager.New(athena.NewFromConfig(cfg), athenapager.WithMaxResults(25))

	var pages, rows int
	for page, err := range pager.Pages(ctx, execID) {
		if err != nil {
			t.Fatalf("page %d fetch failed: %v", pages+1, err)
		}
		if page.RowCount != len(page.Rows) {
			t.Fatalf("page %d: RowCount=%d len(Rows)=%d", pages+1, page.RowCount, len(page.Rows))
		}
		pages++
		rows += page.RowCount
		if pages >= 5 {
			// enough pages to prove token chaining; abandon the rest
			break
		}
	}
	if pages == 0 {
		t.Fatal("iteration yielded no pages")
	}
	t.Logf("paged %d rows across %d pages", rows, pages)
}
