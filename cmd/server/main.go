// Command server exposes the chandas meter analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?text=<verse>[&script=auto|devanagari|latin]
//	POST /api/analyze   body: {"text":"...","script":"auto"}
//	GET  /api/meters
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/cors"

	chandas "github.com/cours-de-sanskrit/chandas"
)

// ---- configuration ------------------------------------------------------

type config struct {
	Addr            string   `yaml:"addr" env:"CHANDAS_ADDR" env-default:":8080"`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"CHANDAS_ALLOWED_ORIGINS" env-default:"*"`
	ForceConfidence bool     `yaml:"force_confidence" env:"CHANDAS_FORCE_CONFIDENCE" env-default:"false"`
}

// loadConfig reads configuration from ENV, or from the YAML file named by
// CONFIG_PATH with ENV taking precedence.
func loadConfig() (*config, error) {
	var cfg config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// ---- JSON response types ------------------------------------------------

type padaJSON struct {
	Count   int    `json:"count"`
	Pattern string `json:"pattern"`
}

type matchJSON struct {
	Name        string  `json:"name"`
	TargetPadas int     `json:"target_padas"`
	TargetLen   int     `json:"target_len"`
	Deviations  []int   `json:"deviations"`
	MatchType   string  `json:"match_type"`
	Confidence  float64 `json:"confidence"`
}

type analyzeResponse struct {
	Script        string     `json:"script"`
	InputSegments int        `json:"input_segments"`
	Padas         []padaJSON `json:"padas"`
	PadaCounts    []int      `json:"pada_counts"`
	Guess         matchJSON  `json:"guess"`
	Note          string     `json:"note"`
}

type meterJSON struct {
	Name             string `json:"name"`
	Padas            int    `json:"padas"`
	SyllablesPerPada int    `json:"syllables_per_pada"`
}

type metersResponse struct {
	Meters []meterJSON `json:"meters"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toAnalyzeResponse(res chandas.AnalysisResult) analyzeResponse {
	padas := make([]padaJSON, 0, len(res.Padas))
	for _, p := range res.Padas {
		padas = append(padas, padaJSON{Count: p.Count, Pattern: p.Pattern})
	}
	return analyzeResponse{
		Script:        string(res.Script),
		InputSegments: res.InputSegments,
		Padas:         padas,
		PadaCounts:    res.PadaCounts,
		Guess: matchJSON{
			Name:        res.Match.Name,
			TargetPadas: res.Match.TargetPadas,
			TargetLen:   res.Match.TargetLen,
			Deviations:  res.Match.Deviations,
			MatchType:   string(res.Match.Tier),
			Confidence:  res.Match.Confidence,
		},
		Note: res.Note,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(an *chandas.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var text string
		var script chandas.Script

		switch r.Method {
		case http.MethodGet:
			text = r.URL.Query().Get("text")
			script = chandas.Script(r.URL.Query().Get("script"))
		case http.MethodPost:
			var body struct {
				Text   string `json:"text"`
				Script string `json:"script"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON with 'text' and optional 'script' fields")
				return
			}
			text = body.Text
			script = chandas.Script(body.Script)
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}

		if script == "" {
			script = chandas.ScriptAuto
		}
		// The analyzer is total: empty text is a valid request.
		writeJSON(w, http.StatusOK, toAnalyzeResponse(an.Analyze(text, script)))
	}
}

func handleMeters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		templates := chandas.Meters()
		meters := make([]meterJSON, 0, len(templates))
		for _, m := range templates {
			meters = append(meters, meterJSON{
				Name:             m.Name,
				Padas:            m.Padas,
				SyllablesPerPada: m.SyllablesPerPada,
			})
		}
		writeJSON(w, http.StatusOK, metersResponse{Meters: meters})
	}
}

func newMux(an *chandas.Analyzer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(an))
	mux.HandleFunc("/api/meters", handleMeters())
	return mux
}

// ---- main ---------------------------------------------------------------

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()

	an := chandas.NewWithOptions(chandas.Options{
		ForceConfidence: cfg.ForceConfidence,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}).Handler(newMux(an))

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
