package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/htmlcheck"
	"github.com/foomo/htmlcheck/config"
	"github.com/spf13/cobra"
)

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd creates the htmlcheck command, the report goes to stdout, logs to stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	conf := config.NewConfig()
	format := string(conf.Format)
	cmd := &cobra.Command{
		Use:   "htmlcheck",
		Short: "Check a html document for elements matching css selectors",
		Long: `htmlcheck loads a html document from a file or a url, looks up every css
selector from the checks file and prints a json object telling which selectors
matched at least one element.

The checks file is a json array of selectors, .yaml and .yml files are read as
yaml lists:

  ["html", "head", "body", "div#x"]`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.Format = config.Format(format)
			return runCheck(cmd.Context(), conf, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&conf.Checks, "checks", "c", conf.Checks, "Path to checks.json")
	flags.StringVarP(&conf.File, "file", "f", "", "Path to index.html")
	flags.StringVarP(&conf.URL, "url", "u", "", "URL of index.html")
	flags.StringVar(&format, "format", format, "Output format, json or yaml")
	flags.StringVar(&conf.Agent, "agent", conf.Agent, "User-Agent for url requests")
	flags.DurationVar(&conf.Timeout, "timeout", 0, "Timeout for url requests, 0 waits forever")
	flags.BoolVar(&conf.Robots, "robots", false, "Only fetch urls robots.txt allows for the agent")
	flags.BoolVarP(&conf.Verbose, "verbose", "v", false, "Enable verbose logging")
	return cmd
}

func runCheck(ctx context.Context, conf *config.Config, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, conf.Verbose)
	if conf.Verbose {
		spew.Fdump(stderr, conf)
	}
	errValidate := conf.Validate()
	if errValidate != nil {
		return errValidate
	}
	source, errSource := conf.Source()
	if errSource != nil {
		return errSource
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}

	checker := htmlcheck.NewChecker(
		htmlcheck.NewAcquirer(http.DefaultClient, conf.Agent, conf.Robots),
		conf.Checks,
		logger,
	)
	result, errCheck := checker.Check(ctx, source)
	if errCheck != nil {
		return errCheck
	}
	logger.Debug("printing results", "count", len(result))
	return htmlcheck.PrintResult(stdout, result, conf.Format)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
