package main

import (
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
)

var verbosity int

var logger logr.Logger

var rootCmd = &cobra.Command{
	Use:   "pcalg",
	Short: "pcalg runs the PC causal-structure-learning algorithm",
	Long: `pcalg discovers a CPDAG over a set of variables from a conditional
independence oracle: skeleton search, collider orientation, and Meek's
orientation-propagation rules.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		stdr.SetVerbosity(verbosity)
		logger = stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity (stdr V-level)")
	rootCmd.AddCommand(runCmd)
}
