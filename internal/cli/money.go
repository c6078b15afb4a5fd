package cli

import (
	"strconv"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/logger"
	"github.com/eagleviewent/go-utilities/money"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMoneyCommand(cfg *Config, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Money arithmetic",
	}

	var (
		currencyName string
		wholeDollar  bool
	)

	split := &cobra.Command{
		Use:   "split <amount> <parts>",
		Short: "Split an amount into equal shares that sum to it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithCallingContext(log, "cli", "money split")

			c, err := splitCurrency(cfg, currencyName)
			if err != nil {
				return err
			}

			m, err := money.NewFromString(args[0], c)
			if err != nil {
				return err
			}

			parts, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.NewInvalidArgument("parts must be an integer, got '%s'", args[1])
			}

			var shares []money.Money

			if wholeDollar {
				shares, err = m.SplitWholeDollar(parts)
			} else {
				shares, err = m.Split(parts)
			}

			if err != nil {
				return err
			}

			log.Debug(
				"split amount",
				zap.Stringer("amount", m),
				zap.Int("parts", parts),
				zap.Bool("whole_dollar", wholeDollar),
			)

			for _, share := range shares {
				if err := writeLine(cmd, share.String()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	split.Flags().StringVar(&currencyName, "currency", "", "currency code, defaults to the configured currency")
	split.Flags().BoolVar(&wholeDollar, "whole-dollar", false, "split whole units only, dropping the fraction")

	cmd.AddCommand(split)

	return cmd
}

func splitCurrency(cfg *Config, name string) (money.Currency, error) {
	if name != "" {
		return money.ParseCurrency(name)
	}

	if cfg == nil || cfg.DefaultCurrency == "" {
		return money.DefaultCurrency, nil
	}

	return cfg.Currency()
}
