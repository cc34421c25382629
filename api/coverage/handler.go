package coverage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	corecoverage "github.com/medrota/rotagap/core/coverage"
	coremetrics "github.com/medrota/rotagap/core/metrics"
	"github.com/medrota/rotagap/core/recurrence"
)

// Service is the subset of the application service used by the handlers.
type Service interface {
	Load(ctx context.Context, years []string) (coremetrics.LoadEvent, error)
	Master() []string
	Stats() []recurrence.RotationStats
	Check(month string) (coremetrics.CoverageEvent, error)
}

type loadRequest struct {
	Years []string `json:"years"`
}

type loadResponse struct {
	RunID           string   `json:"run_id"`
	Years           []string `json:"years"`
	RawRows         int      `json:"raw_rows"`
	PreparedRecords int      `json:"prepared_records"`
	MasterRotations int      `json:"master_rotations"`
}

type coverageResponse struct {
	RunID    string   `json:"run_id"`
	Month    string   `json:"month"`
	Unfilled []string `json:"unfilled"`
}

// NewHandler returns the JSON API for loading schedule data and checking
// monthly coverage.
func NewHandler(svc Service) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/load", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req loadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		ev, err := svc.Load(r.Context(), req.Years)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, loadResponse{
			RunID:           ev.RunID,
			Years:           ev.Years,
			RawRows:         ev.RawRows,
			PreparedRecords: ev.Prepared,
			MasterRotations: ev.MasterSize,
		})
	})
	mux.HandleFunc("/api/master", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, svc.Master())
	})
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, svc.Stats())
	})
	mux.HandleFunc("/api/coverage", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ev, err := svc.Check(r.URL.Query().Get("month"))
		switch {
		case errors.Is(err, corecoverage.ErrInvalidMonth):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		writeJSON(w, coverageResponse{RunID: ev.RunID, Month: ev.Month, Unfilled: ev.Unfilled})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Serve runs the API server on addr until the context is canceled.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
