// Command atomicint-stress runs the FetchAdd conservation check against the
// atomic integer kinds compiled into this build and prints a report.
//
// With --listen it keeps serving /metrics, /live and /ready afterwards,
// until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srediag/atomicint/internal/logging"
	"github.com/srediag/atomicint/internal/stress"
)

var logger = logging.New("atomicint-stress", nil)

// exitError carries a process exit status out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag and argument errors.
	fmt.Fprintln(stderr, err)
	return 2
}

type options struct {
	kinds      []string
	workers    int
	iterations int
	concurrent bool
	listen     string
	logLevel   int
	json       bool
}

func newRootCmd() *cobra.Command {
	defaults := stress.DefaultConfig()
	opts := options{
		workers:    defaults.Workers,
		iterations: defaults.Iterations,
		logLevel:   logging.Level(),
	}
	cmd := &cobra.Command{
		Use:           "atomicint-stress",
		Short:         "Stress the atomic integer kinds of this build",
		Long:          "Run N workers doing M FetchAdd calls against every selected kind and check the final values.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLevel(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress(cmd, &opts)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&opts.kinds, "kinds", nil, "kinds to run, comma separated (default all)")
	f.IntVar(&opts.workers, "workers", opts.workers, "goroutines per kind")
	f.IntVar(&opts.iterations, "iterations", opts.iterations, "FetchAdd calls per goroutine")
	f.BoolVar(&opts.concurrent, "concurrent", false, "run all kinds at once")
	f.StringVar(&opts.listen, "listen", "", "serve /metrics, /live and /ready on this address after the run")
	f.BoolVar(&opts.json, "json", false, "print the report as JSON")
	cmd.PersistentFlags().IntVar(&opts.logLevel, "log-level", opts.logLevel, "log level, 0 trace .. 5 silent")

	cmd.AddCommand(newKindsCmd())
	return cmd
}

func runStress(cmd *cobra.Command, opts *options) error {
	cfg := &stress.Config{
		Kinds:      opts.kinds,
		Workers:    opts.workers,
		Iterations: opts.iterations,
		Concurrent: opts.concurrent,
	}
	if err := stress.VerifyConfig(cfg); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return &exitError{code: 2, err: err}
	}

	ctx := cmd.Context()
	var srv *server
	if opts.listen != "" {
		var err error
		if srv, err = startServer(opts.listen); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return &exitError{code: 2, err: err}
		}
	}

	results, runErr := stress.Run(ctx, cfg)
	if err := printReport(cmd.OutOrStdout(), results, opts.json); err != nil {
		return &exitError{code: 1, err: err}
	}
	if runErr != nil {
		logger.Errorf("stress run failed: %v", runErr)
	}

	if srv != nil {
		<-ctx.Done()
		srv.stop()
	}
	if runErr != nil {
		return &exitError{code: 1, err: runErr}
	}
	return nil
}

func printReport(w io.Writer, results []stress.Result, asJSON bool) error {
	if !asJSON {
		_, err := io.WriteString(w, stress.Render(results))
		return err
	}
	b, err := stress.RenderJSON(results)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
