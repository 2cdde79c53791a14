// Command basicproject constructs the fixtures from outside their packages and
// prints them, confirming both packages can be imported and used together.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charlieparkes/basicproject"
	"github.com/charlieparkes/basicproject/internal/env"
	"github.com/charlieparkes/basicproject/other"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var newDebugLogger = func() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "basicproject:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("basicproject", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	which := flags.StringP("fixture", "f", "all", "fixture to print: base, derived or all")
	indent := flags.IntP("indent", "i", 0, "starting indent level")
	debug := flags.Bool("debug", false, "log fixture lifecycle")
	envFile := flags.String("env-file", ".env", "optional dotenv file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage of basicproject:\n%v", flags.FlagUsages())
			return nil
		}
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %v: %w", *envFile, err)
	}

	e, err := env.Load()
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if *debug || e.Debug {
		if log, err = newDebugLogger(); err != nil {
			return err
		}
		defer log.Sync()
	}

	var selected []basicproject.Fixture
	switch *which {
	case "base":
		selected = append(selected, basicproject.NewBaseFixture(basicproject.BaseFixtureLogger(log)))
	case "derived":
		selected = append(selected, other.NewDerivedFixture(basicproject.BaseFixtureLogger(log)))
	case "all":
		selected = append(selected,
			basicproject.NewBaseFixture(basicproject.BaseFixtureLogger(log)),
			other.NewDerivedFixture(basicproject.BaseFixtureLogger(log)),
		)
	default:
		return fmt.Errorf("unknown fixture %q", *which)
	}

	ctx := context.Background()
	fixtures := basicproject.NewFixtures(basicproject.FixturesLogger(log))
	defer fixtures.RecoverTearDown(ctx)
	if err := setUp(ctx, log, fixtures, selected...); err != nil {
		return err
	}
	for _, name := range fixtures.Names() {
		fixtures.Get(name).Describe(stdout, basicproject.Indent(*indent))
	}
	return fixtures.TearDown(ctx)
}

// setUp adds every fixture, releasing the ones already added if any fails.
func setUp(ctx context.Context, log *zap.Logger, fixtures *basicproject.Fixtures, selected ...basicproject.Fixture) error {
	if err := fixtures.Add(ctx, selected...); err != nil {
		if tdErr := fixtures.TearDown(ctx); tdErr != nil {
			log.Warn("failed to tear down", zap.Error(tdErr))
		}
		return err
	}
	return nil
}
