package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Clark-Hu/film-catalog/internal/magnitude"
)

func newMagnitudeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magnitude",
		Short: "Convert between numbers and magnitude words",
	}
	cmd.AddCommand(newMagnitudeParseCommand())
	cmd.AddCommand(newMagnitudeFormatCommand())
	return cmd
}

func newMagnitudeParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Print the number written in text, e.g. \"1,5 bilhão\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			value, ok := magnitude.Parse(text)
			if !ok {
				return fmt.Errorf("no magnitude found in %q", text)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
			return err
		},
	}
}

func newMagnitudeFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>",
		Short: "Print a number using magnitude words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), magnitude.Format(value))
			return err
		},
	}
}
