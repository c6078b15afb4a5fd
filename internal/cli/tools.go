package cli

import (
	"github.com/eagleviewent/go-utilities/stringx"
	"github.com/eagleviewent/go-utilities/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMaskCommand(cfg *Config, log *zap.Logger) *cobra.Command {
	visible, total := stringx.DefaultVisibleChars, stringx.DefaultTotalLength

	if cfg != nil {
		visible, total = cfg.Mask.Visible, cfg.Mask.Total
	}

	cmd := &cobra.Command{
		Use:   "mask <value>",
		Short: "Mask all but the last characters of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			masked, err := stringx.Mask(args[0], visible, total, stringx.DefaultPadChar)
			if err != nil {
				log.Debug("value cannot be masked", zap.Error(err))

				return err
			}

			return writeLine(cmd, masked)
		},
	}

	cmd.Flags().IntVar(&visible, "visible", visible, "number of trailing characters left visible")
	cmd.Flags().IntVar(&total, "total", total, "width of the masked value")

	return cmd
}

func newGUIDCommand() *cobra.Command {
	var ordered bool

	cmd := &cobra.Command{
		Use:   "guid",
		Short: "Generate a sequential id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newID := uuid.NewSequential
			if ordered {
				newID = uuid.NewOrdered
			}

			id, err := newID()
			if err != nil {
				return err
			}

			return writeLine(cmd, id.String())
		},
	}

	cmd.Flags().BoolVar(&ordered, "ordered", false, "generate a version 7 id instead of a sequential one")

	return cmd
}
