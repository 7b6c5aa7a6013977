package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/twistedduck/tptp/pkg/util/source"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a given set of problem or derivation files, exiting on failure.  Files
// with a ".gz" extension are decompressed transparently.
func readInputFiles(filenames []string) []source.File {
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return files
}

// Print a batch of syntax errors with appropriate highlighting.
func printSyntaxErrors(errs []source.SyntaxError) {
	for _, err := range errs {
		printSyntaxError(&err)
	}
}

// Print a syntax error, along with the enclosing source line and a caret
// highlight underneath the offending text.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Determine highlight extent within the enclosing line
	start := span.Start() - line.Start()
	length := span.Length()
	//
	if start+length > line.Length() {
		length = line.Length() - start
	}
	//
	if length < 1 {
		length = 1
	}
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", start))
	// Print highlight
	fmt.Println(colourise(strings.Repeat("^", length)))
}

// Apply ANSI highlighting, provided stdout is an actual terminal.
func colourise(text string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Sprintf("\033[31m%s\033[0m", text)
	}

	return text
}
