package catalog

import (
	"github.com/Clark-Hu/film-catalog/internal/magnitude"
)

// Upstream field names of the financial figures.
const (
	FieldBudget    = "orcamento"
	FieldBoxOffice = "bilheteria"
)

// Profit is the outcome of CalculateProfit.
type Profit struct {
	Value float64
	Text  string
	// Missing lists the fields that held no magnitude expression. Each one
	// entered the subtraction as zero.
	Missing []string
}

// CalculateProfit subtracts the budget from the box office, both written with
// magnitude words, and renders the difference the same way.
func CalculateProfit(budget, boxOffice string) Profit {
	var missing []string

	spent, ok := magnitude.Parse(budget)
	if !ok {
		missing = append(missing, FieldBudget)
	}
	earned, ok := magnitude.Parse(boxOffice)
	if !ok {
		missing = append(missing, FieldBoxOffice)
	}

	value := earned - spent
	return Profit{
		Value:   value,
		Text:    magnitude.Format(value),
		Missing: missing,
	}
}
