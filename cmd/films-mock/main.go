package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/Clark-Hu/film-catalog/internal/filmsapi"
)

func main() {
	var (
		port    = flag.String("port", "9099", "port to listen on")
		data    = flag.String("data", "cmd/films-mock/filmes.json", "path to mock catalog file")
		logReqs = flag.Bool("log", false, "enable request logging")
	)
	flag.Parse()

	file, err := os.ReadFile(*data)
	if err != nil {
		log.Fatalf("read mock data: %v", err)
	}

	// Refuse to serve a fixture the real client could not decode.
	catalog, err := filmsapi.DecodeCatalog(bytes.NewReader(file))
	if err != nil {
		log.Fatalf("parse mock data: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/filmes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if *logReqs {
			log.Printf("%s %s request_id=%s", r.Method, r.URL.Path, r.Header.Get("X-Request-ID"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(file)
	})

	addr := ":" + *port
	log.Printf("mock films api listening on %s (%d films)", addr, len(catalog.Films))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
