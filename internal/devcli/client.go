package devcli

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/smithy-go/logging"
	"go.uber.org/zap"

	"github.com/lakequery/athena-pager-go/athenapager"
)

// NewAthena builds an Athena client from global flags, resolving the rest
// of the configuration through the default AWS chain.
func NewAthena(ctx context.Context, g GlobalFlags) (*athena.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if g.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(g.Region))
	}
	if g.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(g.Profile))
	}
	if g.AccessKey != "" && g.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(g.AccessKey, g.SecretKey, g.SessionToken)))
	}
	if g.Verbose {
		loadOpts = append(loadOpts,
			config.WithClientLogMode(aws.LogRequest|aws.LogResponse),
			config.WithLogger(logging.NewStandardLogger(os.Stderr)),
		)
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	return athena.NewFromConfig(cfg), nil
}

// NewPager wraps an Athena client in a pager configured from global flags.
func NewPager(client athenapager.QueryResultsClient, g GlobalFlags) *athenapager.Pager {
	var opts []athenapager.Option
	if g.MaxResults > 0 {
		opts = append(opts, athenapager.WithMaxResults(int32(g.MaxResults)))
	}
	return athenapager.New(client, opts...)
}

// Logger returns a zap logger for CLI diagnostics; a no-op logger unless -v.
func Logger(g GlobalFlags) *zap.Logger {
	if !g.Verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Ctx returns a context with the CLI-configured timeout.
func Ctx(g GlobalFlags) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), g.Timeout)
}
