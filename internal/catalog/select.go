package catalog

import (
	"github.com/Clark-Hu/film-catalog/internal/domain"
)

// Language codes honoured by SelectSynopsis, in priority order.
const (
	LanguagePortuguese = "pt-br"
	LanguageEnglish    = "en"
)

// IMDbSource is the rating source whose value is re-served.
const IMDbSource = "IMDb"

// HighestAward returns the name of the award with the greatest relevance. On a
// tie the earliest award in the list wins.
func HighestAward(awards []domain.Award) (string, error) {
	if len(awards) == 0 {
		return "", invalidInput("premios", "award list is empty")
	}
	best := awards[0]
	for _, a := range awards[1:] {
		if a.Relevance > best.Relevance {
			best = a
		}
	}
	return best.Name, nil
}

// SelectSynopsis prefers the Portuguese synopsis, then English, then whatever
// comes first.
func SelectSynopsis(synopses []domain.Synopsis) (string, error) {
	if len(synopses) == 0 {
		return "", invalidInput("sinopse", "synopsis list is empty")
	}
	for _, lang := range []string{LanguagePortuguese, LanguageEnglish} {
		for _, s := range synopses {
			if s.Language == lang {
				return s.Text, nil
			}
		}
	}
	return synopses[0].Text, nil
}

// IMDbRating returns the text of the first rating whose source is exactly "IMDb".
func IMDbRating(ratings []domain.Rating) (string, error) {
	for _, r := range ratings {
		if r.Source != IMDbSource {
			continue
		}
		if r.Value == "" {
			return "", invalidInput("ratings", "%s rating has no value", IMDbSource)
		}
		return r.Value.String(), nil
	}
	return "", invalidInput("ratings", "no %s rating", IMDbSource)
}
