package catalog

import (
	"fmt"
	"log/slog"

	"github.com/Clark-Hu/film-catalog/internal/domain"
)

// Mapper turns upstream records into NormalizedFilm values.
type Mapper struct {
	strict bool
	logger *slog.Logger
}

// NewMapper builds a Mapper. In strict mode a budget or box office without a
// magnitude expression fails the record; otherwise it counts as zero and a
// warning is logged.
func NewMapper(strict bool, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{strict: strict, logger: logger}
}

// Map normalizes one record.
func (m *Mapper) Map(raw domain.RawFilm) (domain.NormalizedFilm, error) {
	rating, err := IMDbRating(raw.Ratings)
	if err != nil {
		return domain.NormalizedFilm{}, err
	}

	profit := CalculateProfit(raw.Budget, raw.BoxOffice)
	if len(profit.Missing) > 0 {
		if m.strict {
			field := profit.Missing[0]
			return domain.NormalizedFilm{}, &Error{
				Kind:  KindMagnitudeParseMiss,
				Field: field,
				Err:   fmt.Errorf("no magnitude in %q", fieldText(raw, field)),
			}
		}
		m.logger.Warn("magnitude missing, counted as zero",
			slog.String("title", raw.Title),
			slog.Any("fields", profit.Missing),
			slog.String("budget", raw.Budget),
			slog.String("box_office", raw.BoxOffice),
		)
	}

	award, err := HighestAward(raw.Awards)
	if err != nil {
		return domain.NormalizedFilm{}, err
	}
	synopsis, err := SelectSynopsis(raw.Synopses)
	if err != nil {
		return domain.NormalizedFilm{}, err
	}

	return domain.NormalizedFilm{
		Title:           raw.Title,
		Year:            raw.Year,
		Director:        raw.Director,
		Genre:           raw.Genre,
		DurationSeconds: raw.DurationMinutes * 60,
		IMDbRating:      rating,
		Profit:          profit.Text,
		TopAward:        award,
		Synopsis:        synopsis,
	}, nil
}

// MapAll normalizes records in order. The first failing record aborts the
// batch and the error names its position and title.
func (m *Mapper) MapAll(raws []domain.RawFilm) ([]domain.NormalizedFilm, error) {
	films := make([]domain.NormalizedFilm, 0, len(raws))
	for i, raw := range raws {
		film, err := m.Map(raw)
		if err != nil {
			return nil, atRecord(err, i, raw.Title)
		}
		films = append(films, film)
	}
	return films, nil
}

func fieldText(raw domain.RawFilm, field string) string {
	if field == FieldBudget {
		return raw.Budget
	}
	return raw.BoxOffice
}
