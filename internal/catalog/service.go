package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Clark-Hu/film-catalog/internal/domain"
	"github.com/Clark-Hu/film-catalog/internal/filmsapi"
)

// Service fetches the upstream catalog and normalizes it.
type Service struct {
	client filmsapi.Client
	mapper *Mapper
	logger *slog.Logger
}

// NewService wires a Service around the upstream client.
func NewService(client filmsapi.Client, mapper *Mapper, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if mapper == nil {
		mapper = NewMapper(false, logger)
	}
	return &Service{client: client, mapper: mapper, logger: logger}
}

// ListFilms calls upstream once and returns every record normalized, in
// upstream order.
func (s *Service) ListFilms(ctx context.Context) ([]domain.NormalizedFilm, error) {
	start := time.Now()

	cat, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return nil, &Error{Kind: KindUpstreamUnavailable, Err: err}
	}

	films, err := s.mapper.MapAll(cat.Films)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("catalog normalized",
		slog.Int("films", len(films)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return films, nil
}
