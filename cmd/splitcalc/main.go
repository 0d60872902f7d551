// Command splitcalc computes an expense split offline, the same way the API
// does before saving an expense.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fkhayef/expensesplit/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "splitcalc",
		Short: "Compute expense splits without a server",
		Long: `splitcalc validates a split and prints the normalized participant list
that would be stored with the expense.

Flags can also be set through SPLITCALC_* environment variables, for example
SPLITCALC_EXACT_TOLERANCE=0, SPLITCALC_TOTAL=90 or SPLITCALC_PARTICIPANT="1 2 3".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.Setup(v.GetString("log-level"))
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	v.SetEnvPrefix("SPLITCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(computeCmd(v))
	root.AddCommand(typesCmd())
	root.AddCommand(tokenCmd(v))

	return root
}
