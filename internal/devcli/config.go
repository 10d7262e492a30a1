package devcli

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Environment keys for defaults.
const (
	EnvRegion     = "ATHENA_PAGER_REGION"
	EnvProfile    = "ATHENA_PAGER_PROFILE"
	EnvMaxResults = "ATHENA_PAGER_MAX_RESULTS"
	EnvTimeoutSec = "ATHENA_PAGER_TIMEOUT" // seconds
)

// Reasonable defaults for interactive use.
const (
	DefaultTimeoutSec = 60
	DefaultMaxResults = 1000
)

// GlobalFlags captures CLI-wide settings and defaults.
type GlobalFlags struct {
	Region  string
	Profile string

	// Static credential override; the default AWS chain is used when unset.
	AccessKey    string
	SecretKey    string
	SessionToken string

	MaxResults int
	Timeout    time.Duration
	Verbose    bool
}

// ParseGlobalFlagsArgs binds global flags to the provided FlagSet and parses args.
func ParseGlobalFlagsArgs(fs *flag.FlagSet, args []string) GlobalFlags {
	var g GlobalFlags

	// Defaults sourced from environment variables.
	defRegion := getenvDefault(EnvRegion, "")
	defProfile := getenvDefault(EnvProfile, "")
	defMax := atoiDefault(os.Getenv(EnvMaxResults), DefaultMaxResults)
	defTO := atoiDefault(os.Getenv(EnvTimeoutSec), DefaultTimeoutSec)

	fs.StringVar(&g.Region, "region", defRegion, "AWS region (env "+EnvRegion+", falls back to the AWS chain)")
	fs.StringVar(&g.Profile, "profile", defProfile, "Shared config profile (env "+EnvProfile+")")
	fs.StringVar(&g.AccessKey, "access-key", "", "Static AWS access key (with -secret-key)")
	fs.StringVar(&g.SecretKey, "secret-key", "", "Static AWS secret key (with -access-key)")
	fs.StringVar(&g.SessionToken, "session-token", "", "Static AWS session token (optional)")
	fs.IntVar(&g.MaxResults, "max", defMax, "Rows requested per page (env "+EnvMaxResults+")")

	timeoutSec := fs.Int("timeout", defTO, "Overall command timeout seconds (env "+EnvTimeoutSec+")")
	fs.BoolVar(&g.Verbose, "v", false, "Verbose diagnostics incl. AWS request/response logs")

	// Parse now.
	fs.Parse(args)

	g.Timeout = time.Duration(*timeoutSec) * time.Second
	return g
}

// MustNonEmpty enforces required flag presence for better operator feedback.
func MustNonEmpty(val, name string) {
	if val == "" {
		// Errors are printed by the command runner for consistent formatting.
		panic("missing required " + name)
	}
}

// Helpers

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return i
}
