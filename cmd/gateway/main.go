package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"career-advisor/internal/app"
	"career-advisor/internal/career"
	"career-advisor/internal/httputil"
	"career-advisor/internal/store"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	shutdownTimeout     = 10 * time.Second
)

type analysisResponse struct {
	store.Analysis
	Result json.RawMessage `json:"result"`
}

type skillGapRequest struct {
	UserData    career.UserData `json:"userData"`
	CareerTitle string          `json:"careerTitle" validate:"required,max=200"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			deps.Log.Warn("failed to close dependencies", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("gateway listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		deps.Log.Info("gateway shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
	}
}

func newRouter(deps app.Deps) http.Handler {
	r := httputil.NewRouter(deps.Log)

	r.Route("/api", func(r chi.Router) {
		r.Post("/careers/suggestions", careerSuggestionsHandler(deps))
		r.Post("/careers/skill-gap", skillGapHandler(deps))
		r.Post("/personality-test", personalityTestHandler(deps))
		r.Get("/analyses", historyHandler(deps))
	})
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	r.Method(http.MethodGet, "/metrics", httputil.MetricsHandler())

	return r
}

// decodeProfile reads and validates a UserData body, writing the 400 itself on failure.
func decodeProfile(deps app.Deps, w http.ResponseWriter, r *http.Request) (career.UserData, bool) {
	var user career.UserData
	if err := httputil.DecodeJSON(r, &user); err != nil {
		httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
		return career.UserData{}, false
	}
	if err := httputil.Validator.Struct(&user); err != nil {
		httputil.ValidationError(deps.Log, w, err)
		return career.UserData{}, false
	}
	return user, true
}

func careerSuggestionsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := decodeProfile(deps, w, r)
		if !ok {
			return
		}
		careers := deps.Advisor.GetAiCareerSuggestions(r.Context(), user)
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"careers": careers,
		})
	}
}

func skillGapHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillGapRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		result := deps.Advisor.GetSkillGapAnalysis(r.Context(), req.UserData, req.CareerTitle)
		httputil.WriteJSON(w, http.StatusOK, result)
	}
}

func personalityTestHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := decodeProfile(deps, w, r)
		if !ok {
			return
		}
		httputil.WriteJSON(w, http.StatusOK, deps.Advisor.GetPersonalityTest(r.Context(), user))
	}
}

func historyHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := store.Kind(r.URL.Query().Get("kind"))
		switch kind {
		case "", store.KindCareers, store.KindSkillGap:
		default:
			httputil.Fail(deps.Log, w, "invalid kind (valid: careers, skill_gap)", nil, http.StatusBadRequest)
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxHistoryLimit {
				httputil.Fail(deps.Log, w, fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit), err, http.StatusBadRequest)
				return
			}
			limit = n
		}

		analyses, err := deps.Advisor.History(r.Context(), kind, limit)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to list analyses", err, http.StatusInternalServerError)
			return
		}
		out := make([]analysisResponse, 0, len(analyses))
		for _, a := range analyses {
			out = append(out, analysisResponse{Analysis: a, Result: json.RawMessage(a.Payload)})
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"analyses": out,
		})
	}
}
