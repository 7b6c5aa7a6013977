package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/twistedduck/tptp/pkg/parser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file",
	Short: "reformat a file into canonical form.",
	Long: `Parse a given problem (or, with --tstp, derivation) file and print it back in
	 canonical form.  Numbers are normalised, redundant parentheses are dropped
	 and each unit occupies a single line.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}
		//
		output := GetString(cmd, "output")
		files := readInputFiles(args)
		file := &files[0]
		//
		var text string
		//
		if GetFlag(cmd, "tstp") {
			document, _, errs := parser.ParseTSTP(file)
			if len(errs) > 0 {
				printSyntaxErrors(errs)
				os.Exit(1)
			}
			//
			text = document.String()
		} else {
			document, _, errs := parser.ParseTPTP(file)
			if len(errs) > 0 {
				printSyntaxErrors(errs)
				os.Exit(1)
			}
			//
			text = document.String()
		}
		//
		if output == "" {
			fmt.Println(text)
		} else if err := os.WriteFile(output, []byte(text+"\n"), 0644); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().Bool("tstp", false, "treat input as a TSTP derivation")
	fmtCmd.Flags().StringP("output", "o", "", "write reformatted output to a given file")
}
