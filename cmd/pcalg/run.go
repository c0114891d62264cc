package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/causalkit/pcalg/citest"
	"github.com/causalkit/pcalg/internal/metrics"
	"github.com/causalkit/pcalg/pcdriver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var (
	oraclePath  string
	varsCSV     string
	level       float64
	enableR4    bool
	maxDepth    int
	metricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the PC algorithm over an oracle CSV truth table",
	RunE:  runPC,
}

func init() {
	runCmd.Flags().StringVar(&oraclePath, "oracle", "", "path to an oracle CSV truth table")
	runCmd.Flags().StringVar(&varsCSV, "vars", "", "comma-separated variable names, in vertex-index order")
	runCmd.Flags().Float64Var(&level, "level", 0.05, "significance level passed to the CI contract")
	runCmd.Flags().BoolVar(&enableR4, "r4", false, "enable Meek's optional orientation rule R4")
	runCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "cap the adjacency search's conditioning depth (0 = unlimited)")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address after the run completes (e.g. :9090)")

	_ = runCmd.MarkFlagRequired("oracle")
	_ = runCmd.MarkFlagRequired("vars")
}

func runPC(cmd *cobra.Command, args []string) error {
	f, err := os.Open(oraclePath)
	if err != nil {
		return fmt.Errorf("opening oracle file: %w", err)
	}
	defer f.Close()

	table, err := citest.ParseOracleCSV(f)
	if err != nil {
		return fmt.Errorf("parsing oracle CSV: %w", err)
	}

	names := strings.Split(varsCSV, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	contract := citest.NewOracleContract(table, names)

	opts := []pcdriver.Option{pcdriver.WithLogger(logger)}
	if enableR4 {
		opts = append(opts, pcdriver.WithR4())
	}
	if maxDepth > 0 {
		opts = append(opts, pcdriver.WithMaxDepth(maxDepth))
	}

	var reg *prometheus.Registry
	var recorder *metrics.Recorder
	if metricsAddr != "" {
		reg = prometheus.NewRegistry()
		recorder = metrics.NewRecorder(reg)
		opts = append(opts, pcdriver.WithMetrics(recorder))
	}

	result, err := pcdriver.Run(len(names), contract, level, opts...)
	if err != nil {
		return fmt.Errorf("running PC: %w", err)
	}

	printResult(cmd, names, result)

	if metricsAddr != "" {
		return serveMetrics(cmd, reg, metricsAddr)
	}

	return nil
}

// printResult renders the CPDAG and its non-trivial separating sets to the
// command's output stream.
func printResult(cmd *cobra.Command, names []string, result pcdriver.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "CPDAG:")
	dense := result.CPDAG.Dense()
	for i, row := range dense {
		fmt.Fprintf(out, "  %-12s %v\n", names[i], row)
	}

	fmt.Fprintln(out, "Separating sets (non-adjacent pairs):")
	for _, pair := range result.CPDAG.UndirectedNonAdjacentPairs() {
		if pair.I >= pair.J {
			continue
		}
		seps, err := result.SepSets.Separators(pair.I, pair.J)
		if err != nil || len(seps) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s ⟂ %s | %v\n", names[pair.I], names[pair.J], seps)
	}
}

// serveMetrics blocks serving Prometheus metrics until interrupted, so an
// operator has a window to scrape the completed run's counters.
func serveMetrics(cmd *cobra.Command, reg *prometheus.Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	fmt.Fprintf(cmd.OutOrStdout(), "serving metrics on %s/metrics (ctrl-c to exit)\n", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		return server.Close()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
