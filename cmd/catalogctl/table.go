package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/Clark-Hu/film-catalog/internal/domain"
)

const synopsisWidth = 48

// filmColumn describes one column of the film table.
type filmColumn struct {
	header string
	align  text.Align
	value  func(domain.NormalizedFilm) string
}

var filmColumns = []filmColumn{
	{"Título", text.AlignLeft, func(f domain.NormalizedFilm) string { return f.Title }},
	{"Ano", text.AlignRight, func(f domain.NormalizedFilm) string { return strconv.Itoa(f.Year) }},
	{"Diretor", text.AlignLeft, func(f domain.NormalizedFilm) string { return f.Director }},
	{"Duração (s)", text.AlignRight, func(f domain.NormalizedFilm) string { return strconv.Itoa(f.DurationSeconds) }},
	{"IMDb", text.AlignRight, func(f domain.NormalizedFilm) string { return f.IMDbRating }},
	{"Lucro", text.AlignRight, func(f domain.NormalizedFilm) string { return f.Profit }},
	{"Maior premiação", text.AlignLeft, func(f domain.NormalizedFilm) string { return f.TopAward }},
	{"Sinopse", text.AlignLeft, func(f domain.NormalizedFilm) string {
		return runewidth.Truncate(f.Synopsis, synopsisWidth, "…")
	}},
}

// renderFilmTable lays films out one per row. Headers keep their accents and
// casing.
func renderFilmTable(films []domain.NormalizedFilm) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(filmColumns))
	configs := make([]table.ColumnConfig, len(filmColumns))
	for i, col := range filmColumns {
		header[i] = col.header
		configs[i] = table.ColumnConfig{Number: i + 1, Align: col.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, f := range films {
		row := make(table.Row, len(filmColumns))
		for i, col := range filmColumns {
			row[i] = col.value(f)
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}
