package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clark-Hu/film-catalog/internal/catalog"
	"github.com/Clark-Hu/film-catalog/internal/config"
	"github.com/Clark-Hu/film-catalog/internal/filmsapi"
	"github.com/Clark-Hu/film-catalog/internal/logging"
)

func newFetchCommand() *cobra.Command {
	var (
		urlFlag    string
		output     string
		strict     bool
		timeout    time.Duration
		verboseLog bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the upstream catalog and print it normalized",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			cfg, err := config.Read()
			if err != nil {
				return err
			}
			if strings.TrimSpace(urlFlag) != "" {
				cfg.FilmsAPIURL = urlFlag
			}
			if cmd.Flags().Changed("strict") {
				cfg.StrictMagnitudes = strict
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if timeout <= 0 {
				timeout = time.Duration(cfg.FilmsAPITimeoutSecs) * time.Second
			}

			logger := logging.Discard()
			if verboseLog {
				logger, err = logging.New(cmd.ErrOrStderr(), "debug", logging.FormatText)
				if err != nil {
					return err
				}
			}

			client, err := filmsapi.NewHTTPClient(filmsapi.Options{
				URL:     cfg.FilmsAPIURL,
				Timeout: timeout,
				Logger:  logger,
			})
			if err != nil {
				return err
			}
			svc := catalog.NewService(client, catalog.NewMapper(cfg.StrictMagnitudes, logger), logger)

			films, err := svc.ListFilms(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch catalog: %w", err)
			}
			logger.Debug("fetched", slog.Int("films", len(films)))

			out := cmd.OutOrStdout()
			if format == outputAuto {
				format = outputJSON
				if isTerminal(out) {
					format = outputTable
				}
			}
			switch format {
			case outputTable:
				_, err = fmt.Fprintln(out, renderFilmTable(films))
				return err
			case outputYAML:
				return writeYAML(cmd, films)
			default:
				return writeJSON(cmd, films)
			}
		},
	}

	cmd.Flags().StringVar(&urlFlag, "url", "", "Films API endpoint (defaults to FILMS_API_URL)")
	cmd.Flags().StringVarP(&output, "output", "o", string(outputAuto), "Output format: auto, table, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail records whose budget or box office has no magnitude")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Upstream timeout (defaults to FILMS_API_TIMEOUT_SECS)")
	cmd.Flags().BoolVarP(&verboseLog, "verbose", "v", false, "Log pipeline details to stderr")

	return cmd
}
