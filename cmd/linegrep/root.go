package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linegrep [options] /pattern/... file...",
	Short: "linegrep - line-oriented pattern search",
	Long: `linegrep prints the lines of the given files that match one or more patterns.

Patterns are given as a single argument of space-separated /regex/ tokens,
optionally followed by i, m or x flags: '/foo/ /bar/i'.

Options:
  -v, --invert-match             select non-matching lines
  -c, --count                    print the line number of each selected line
  -l, --files-with-matches       print the path of each file with a match
  -L, --files-without-match      print the path of each file without a match
  -o, --only-matching            print only the matched text
  -F, --fixed-strings            treat each pattern token as a literal
  -A_N, --after-context=N        print the line N below each selected line
  -B_N, --before-context=N       print the line N above each selected line
  -C_N, --context=N              print the lines N above and below

Settings:
  --color=auto|always|never      colour output (default auto)
  --jobs=N                       files loaded in parallel (default 1)
  --config=FILE                  YAML config file (default $LINEGREP_CONFIG)
  --log-file=FILE                write logs to a rotating file
  --log-level=LEVEL              log level (default warn)

Run 'linegrep combinations' for the accepted option combinations.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runSearch,
}

func init() {
	rootCmd.AddCommand(combinationsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
