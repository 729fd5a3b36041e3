package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hill26",
	Short: "hill26 - decrypt 3x3 Hill-cipher text over the 26-letter alphabet.",
	Long: `hill26 decrypts text enciphered with a 3x3 Hill cipher, inverting the key
matrix modulo 26 through its CRT decomposition 26 = 2 x 13.

The key is 9 letters, read row-major into a 3x3 matrix (A=0 ... Z=25).
Ciphertext may contain arbitrary text; non-letters are ignored and the
remainder is padded with 'X' to whole 3-letter blocks.

Usage:
  hill26 decrypt --key GYBNQKURP --text POH

Run with no flags for interactive prompts.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
