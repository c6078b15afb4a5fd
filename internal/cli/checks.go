package cli

import (
	"github.com/eagleviewent/go-utilities/checks"
	"github.com/eagleviewent/go-utilities/serialization"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRoutingCommand(log *zap.Logger) *cobra.Command {
	var secured bool

	cmd := &cobra.Command{
		Use:   "routing <number>",
		Short: "Validate an ABA routing number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := checks.NewRoutingNumber(args[0])
			if err != nil {
				log.Debug("routing number rejected", zap.Error(err))

				return err
			}

			if secured {
				return writeLine(cmd, r.Secured().String())
			}

			return writeLine(cmd, r.String())
		},
	}

	cmd.Flags().BoolVar(&secured, "secured", false, "print the masked routing number")

	return cmd
}

// micrFields is the printed form of a parsed MICR line.
type micrFields struct {
	Micr          string `json:"micr"`
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
	CheckNumber   string `json:"check_number"`
	Valid         bool   `json:"valid"`
}

func newMicrCommand(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "micr",
		Short: "Parse and format MICR lines",
	}

	parse := &cobra.Command{
		Use:   "parse <raw>",
		Short: "Parse a raw MICR line into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := checks.NewMicr(args[0])
			if err != nil {
				log.Debug("micr rejected", zap.Error(err))

				return err
			}

			out, err := serialization.ToJSON(micrFields{
				Micr:          m.String(),
				RoutingNumber: m.RoutingNumber().String(),
				AccountNumber: m.AccountNumber().String(),
				CheckNumber:   m.CheckNumber().String(),
				Valid:         m.IsValid(),
			}, serialization.WithIndent("  "))
			if err != nil {
				return err
			}

			return writeLine(cmd, out)
		},
	}

	var routing, account, check string

	format := &cobra.Command{
		Use:   "format",
		Short: "Build a raw MICR line from its fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := checks.NewRoutingNumber(routing)
			if err != nil {
				return err
			}

			a, err := checks.NewAccountNumber(account)
			if err != nil {
				return err
			}

			c, err := checks.NewCheckNumber(check)
			if err != nil {
				return err
			}

			return writeLine(cmd, checks.FormatMicr(r, a, c))
		},
	}

	format.Flags().StringVar(&routing, "routing", "", "routing number")
	format.Flags().StringVar(&account, "account", "", "account number")
	format.Flags().StringVar(&check, "check", "", "check number")

	_ = format.MarkFlagRequired("routing")
	_ = format.MarkFlagRequired("account")

	cmd.AddCommand(parse, format)

	return cmd
}
