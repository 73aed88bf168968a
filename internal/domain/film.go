package domain

// Catalog mirrors the top-level document served by the films API.
type Catalog struct {
	Films []RawFilm `json:"filmes"`
}

// RawFilm is a single record as published upstream. Field names follow the
// upstream contract.
type RawFilm struct {
	Title           string     `json:"titulo"`
	Year            int        `json:"ano"`
	Director        string     `json:"diretor"`
	Genre           string     `json:"genero"`
	DurationMinutes int        `json:"duracao"`
	Ratings         []Rating   `json:"ratings"`
	Budget          string     `json:"orcamento"`
	BoxOffice       string     `json:"bilheteria"`
	Awards          []Award    `json:"premios"`
	Synopses        []Synopsis `json:"sinopse"`
}

// Rating is one score attributed to a rating source such as IMDb.
type Rating struct {
	Source string      `json:"fonte"`
	Value  RatingValue `json:"valor"`
}

// Award is a prize with the relevance upstream assigns to it.
type Award struct {
	Name      string  `json:"nome"`
	Relevance float64 `json:"relevancia"`
}

// Synopsis is the plot summary in one language.
type Synopsis struct {
	Language string `json:"idioma"`
	Text     string `json:"texto"`
}

// NormalizedFilm is the flat record this service re-serves.
type NormalizedFilm struct {
	Title           string `json:"titulo" yaml:"titulo"`
	Year            int    `json:"ano" yaml:"ano"`
	Director        string `json:"diretor" yaml:"diretor"`
	Genre           string `json:"genero" yaml:"genero"`
	DurationSeconds int    `json:"duracaoSegundos" yaml:"duracaoSegundos"`
	IMDbRating      string `json:"notaIMDb" yaml:"notaIMDb"`
	Profit          string `json:"lucro" yaml:"lucro"`
	TopAward        string `json:"maiorPremiacao" yaml:"maiorPremiacao"`
	Synopsis        string `json:"sinopse" yaml:"sinopse"`
}
