package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twistedduck/tptp/pkg/parser"
	"github.com/twistedduck/tptp/pkg/util/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file(s)",
	Short: "check that one or more files parse.",
	Long: `Parse a given set of problem (or, with --tstp, derivation) files, reporting
	 any syntax errors encountered along with their enclosing source lines.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Usage()
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		tstp := GetFlag(cmd, "tstp")
		files := readInputFiles(args)
		ok := true
		//
		for i := range files {
			ok = checkFile(&files[i], tstp) && ok
		}
		//
		if !ok {
			os.Exit(1)
		}
	},
}

// Parse a single file, printing any syntax errors which arise.  Returns true
// if the file parsed cleanly.
func checkFile(file *source.File, tstp bool) bool {
	errs := parseAny(file, tstp)
	//
	if len(errs) > 0 {
		printSyntaxErrors(errs)
		return false
	}
	//
	log.Debugf("checked %s", file.Filename())
	//
	return true
}

// Parse a file as either a problem or a derivation, discarding the resulting
// document.
func parseAny(file *source.File, tstp bool) []source.SyntaxError {
	if tstp {
		_, _, errs := parser.ParseTSTP(file)
		return errs
	}
	//
	_, _, errs := parser.ParseTPTP(file)
	//
	return errs
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("tstp", false, "treat inputs as TSTP derivations")
}
