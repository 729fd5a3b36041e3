package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/hill26/hill"
)

// ErrMissingInput indicates that a required value was supplied neither as a
// flag nor on standard input. Boundary-layer error: the core packages never
// see it.
var ErrMissingInput = errors.New("hill26: no input provided")

var (
	decryptKey  string
	decryptText string

	decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt Hill-cipher text with a 9-letter key",
		Long: `Decrypt ciphertext with a 3x3 Hill-cipher key.

Values omitted from the flags are read from standard input — with prompts
when attached to a terminal, as plain successive lines when piped.

Examples:
  # Everything on the command line
  hill26 decrypt --key GYBNQKURP --text POH

  # Fully interactive
  hill26 decrypt

  # Piped
  printf 'GYBNQKURP\nPOH\n' | hill26 decrypt`,
		RunE: runDecrypt,
	}
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "9-letter key, row-major A-Z (prompted for when omitted)")
	decryptCmd.Flags().StringVarP(&decryptText, "text", "t", "", "ciphertext; non-letters ignored (prompted for when omitted)")
	rootCmd.AddCommand(decryptCmd)
}

// promptLine asks for one line of input. The prompt is only printed when
// stdin is an interactive terminal, so piped input stays clean.
func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(out, prompt)
	}
	line, err := in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", ErrMissingInput
	}

	return line, nil
}

func runDecrypt(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	keyText := decryptKey
	if keyText == "" {
		var err error
		if keyText, err = promptLine(in, out, "Enter 9-letter key (row-major, A-Z): "); err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
	}
	key, err := hill.NewKeyMatrix(keyText)
	if err != nil {
		return err
	}

	ciphertext := decryptText
	if ciphertext == "" {
		if ciphertext, err = promptLine(in, out, "Enter ciphertext (any text; non-letters ignored): "); err != nil {
			return fmt.Errorf("reading ciphertext: %w", err)
		}
	}

	inverseKey, err := hill.InvertKey(key)
	if err != nil {
		return err
	}

	plaintext := hill.Decrypt(ciphertext, inverseKey)
	fmt.Fprintf(out, "Decrypted plaintext (uppercase): %s\n", color.New(color.FgGreen).Sprint(plaintext))

	return nil
}
