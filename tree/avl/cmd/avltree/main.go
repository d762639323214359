// Command avltree builds AVL trees from the command line and prints
// them, mostly for eyeballing rotations.
//
//	$ avltree build 10 20 30
//	$ avltree build 1 2 3 4 5 6 7 --remove 1,2 --check
//	$ avltree random -n 1000 --trees 8
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/must"
	"go.uber.org/zap"
)

var (
	verbose bool
	log     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "avltree",
	Short: "build and inspect AVL trees",

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = must.Must2(zap.NewDevelopment())
		} else {
			log = must.Must2(zap.NewProduction())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every operation")
	rootCmd.AddCommand(buildCmd(), randomCmd())
}

func main() {
	os.Exit(finish(rootCmd.Execute()))
}

// finish logs the outcome of the command and returns the exit code.
func finish(err error) int {
	if err == nil {
		if log != nil {
			_ = log.Sync()
		}
		return 0
	}

	if log == nil {
		// argument errors happen before PersistentPreRun
		log = must.Must2(zap.NewProduction())
	}
	log.Error("command failed", zap.Error(err))
	_ = log.Sync()
	return 1
}
