package cmd

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twistedduck/tptp/pkg/util/source"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] file(s)",
	Short: "re-check files whenever they change.",
	Long: `Parse a given set of problem (or, with --tstp, derivation) files, then watch
	 them and re-parse each whenever it is written to.  Runs until interrupted.`,
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
		// Initial sweep
		for _, filename := range args {
			recheckFile(filename, tstp)
		}
		//
		watchFiles(args, tstp)
	},
}

// Watch a given set of files indefinitely, re-parsing each whenever a write is
// observed.  Directories are watched rather than the files themselves, since
// editors commonly replace files on save.
func watchFiles(filenames []string, tstp bool) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}
	//
	defer watcher.Close()
	// Determine target files, keyed by absolute path.
	targets := make(map[string]string)
	dirs := make(map[string]bool)
	//
	for _, filename := range filenames {
		abs, err := filepath.Abs(filename)
		if err != nil {
			log.Fatal(err)
		}
		//
		targets[abs] = filename
		dirs[filepath.Dir(abs)] = true
	}
	//
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Fatal(err)
		}
		//
		log.Debugf("watching %s", dir)
	}
	//
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			//
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			//
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			//
			if filename, match := targets[abs]; match {
				recheckFile(filename, tstp)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			//
			log.Errorf("watch: %v", err)
		}
	}
}

// Re-read and re-parse a single file, reporting the outcome.
func recheckFile(filename string, tstp bool) {
	files, err := source.ReadFiles(filename)
	if err != nil {
		log.Errorf("%s: %v", filename, err)
		return
	}
	//
	if checkFile(&files[0], tstp) {
		log.Infof("%s: ok", filename)
	} else {
		log.Warnf("%s: syntax errors", filename)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("tstp", false, "treat inputs as TSTP derivations")
}
