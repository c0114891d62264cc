// Command pcalg runs the PC algorithm over an oracle CSV truth table and
// prints the resulting CPDAG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
