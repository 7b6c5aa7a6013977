package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/twistedduck/tptp/pkg/ast"
	"github.com/twistedduck/tptp/pkg/parser"
)

var szsCmd = &cobra.Command{
	Use:   "szs [flags] file(s)",
	Short: "summarise the SZS results of one or more derivations.",
	Long: `Parse a given set of derivation files and print, for each, the SZS status and
	 (where reported) the dataform of the output.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Usage()
			os.Exit(1)
		}
		//
		files := readInputFiles(args)
		ok := true
		//
		for i := range files {
			document, _, errs := parser.ParseTSTP(&files[i])
			if len(errs) > 0 {
				printSyntaxErrors(errs)

				ok = false

				continue
			}
			//
			fmt.Printf("%s: %s\n", files[i].Filename(), summariseSZS(document.SZS))
		}
		//
		if !ok {
			os.Exit(1)
		}
	},
}

// Render an SZS summary as a single human-readable line.
func summariseSZS(szs ast.SZS) string {
	var status string
	//
	switch {
	case !szs.Status.HasValue():
		status = "(no status reported)"
	case szs.Status.Unwrap().IsLeft():
		status = szs.Status.Unwrap().UnwrapLeft().Name()
	default:
		status = szs.Status.Unwrap().UnwrapRight().Name()
	}
	//
	if szs.Dataform.HasValue() {
		return fmt.Sprintf("%s (%s)", status, szs.Dataform.Unwrap().Name())
	}
	//
	return status
}

func init() {
	rootCmd.AddCommand(szsCmd)
}
