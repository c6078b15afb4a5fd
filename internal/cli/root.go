// Package cli implements the eveutil command line tool, which exposes
// the check, money, masking and id utilities of this module.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the eveutil command tree. Output goes to the
// command's out writer; log receives diagnostics.
func NewRootCommand(cfg *Config, log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "eveutil",
		Short: "Banking value utilities",
		Long: `eveutil validates routing numbers and MICR lines, splits money
amounts, masks sensitive values and generates sequential ids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRoutingCommand(log),
		newMicrCommand(log),
		newMoneyCommand(cfg, log),
		newMaskCommand(cfg, log),
		newGUIDCommand(),
	)

	return root
}

func writeLine(cmd *cobra.Command, a ...any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), a...)

	return err
}
