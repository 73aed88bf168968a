package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Clark-Hu/film-catalog/internal/catalog"
)

func newProfitCommand() *cobra.Command {
	var budget, boxOffice string
	var strict bool

	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Compute the profit of a budget and box office written with magnitude words",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(budget) == "" || strings.TrimSpace(boxOffice) == "" {
				return errors.New("--budget and --box-office are required")
			}

			profit := catalog.CalculateProfit(budget, boxOffice)
			if len(profit.Missing) > 0 {
				if strict {
					return fmt.Errorf("no magnitude found in %s", strings.Join(profit.Missing, ", "))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: no magnitude found in %s, counted as zero\n", strings.Join(profit.Missing, ", "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), profit.Text)
			return err
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "Budget text, e.g. \"US$ 160 milhões\"")
	cmd.Flags().StringVar(&boxOffice, "box-office", "", "Box office text, e.g. \"US$ 836,8 milhões\"")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when either value has no magnitude")

	return cmd
}
