package career

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"career-advisor/internal/cache"
	"career-advisor/internal/llm"
	"career-advisor/internal/logger"
	"career-advisor/internal/metrics"
	"career-advisor/internal/store"
)

// Advisor turns profiles into career suggestions and skill-gap analyses via an LLM.
// It holds no per-call state and is safe for concurrent use.
type Advisor struct {
	llm      llm.Client
	cache    cache.Cache
	store    store.Store
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewAdvisor wires an Advisor. A nil cache or store disables that feature.
func NewAdvisor(client llm.Client, c cache.Cache, st store.Store, cacheTTL time.Duration, log *slog.Logger) *Advisor {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if st == nil {
		st = store.NewNoOpStore()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Advisor{llm: client, cache: c, store: st, cacheTTL: cacheTTL, log: log}
}

// SuggestCareers returns three (or however many the model produced) career suggestions.
func (a *Advisor) SuggestCareers(ctx context.Context, user UserData) ([]Career, error) {
	prompt := CareerPrompt(user)
	key := cache.GenerateCacheKey(string(store.KindCareers), prompt)

	var careers []Career
	if a.lookup(ctx, store.KindCareers, key, &careers) {
		return careers, nil
	}

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete career prompt: %w", err)
	}
	root, err := ExtractJSON(raw)
	if err != nil {
		a.log.Error("failed to parse AI response as JSON", "err", err)
		return nil, fmt.Errorf("parse career response: %w", err)
	}
	careers, err = parseCareers(root)
	if err != nil {
		a.log.Error("unexpected career response shape", "err", err)
		return nil, fmt.Errorf("map career response: %w", err)
	}

	titles := make([]string, 0, len(careers))
	for _, c := range careers {
		titles = append(titles, c.Title)
	}
	a.remember(ctx, store.KindCareers, key, "", titles, careers)
	return careers, nil
}

// AnalyzeSkillGap returns the skills user lacks for careerTitle.
func (a *Advisor) AnalyzeSkillGap(ctx context.Context, user UserData, careerTitle string) (SkillGapResult, error) {
	prompt := SkillGapPrompt(user, careerTitle)
	key := cache.GenerateCacheKey(string(store.KindSkillGap), prompt)

	var result SkillGapResult
	if a.lookup(ctx, store.KindSkillGap, key, &result) {
		return result, nil
	}

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return SkillGapResult{}, fmt.Errorf("complete skill gap prompt: %w", err)
	}
	root, err := ExtractJSON(raw)
	if err != nil {
		a.log.Error("failed to parse AI response as JSON", "err", err)
		return SkillGapResult{}, fmt.Errorf("parse skill gap response: %w", err)
	}
	result, err = parseSkillGap(root)
	if err != nil {
		a.log.Error("unexpected skill gap response shape", "err", err)
		return SkillGapResult{}, fmt.Errorf("map skill gap response: %w", err)
	}

	a.remember(ctx, store.KindSkillGap, key, careerTitle, result.MissingSkills, result)
	return result, nil
}

// GetAiCareerSuggestions never fails: any error is logged and an empty list returned.
func (a *Advisor) GetAiCareerSuggestions(ctx context.Context, user UserData) []Career {
	careers, err := a.SuggestCareers(ctx, user)
	if err != nil {
		a.log.Error("error fetching AI career suggestions", "err", err)
		metrics.AnalysesServed.WithLabelValues(string(store.KindCareers), "true").Inc()
		return []Career{}
	}
	metrics.AnalysesServed.WithLabelValues(string(store.KindCareers), "false").Inc()
	return careers
}

// GetSkillGapAnalysis never fails: any error is logged and EmptySkillGap returned.
func (a *Advisor) GetSkillGapAnalysis(ctx context.Context, user UserData, careerTitle string) SkillGapResult {
	result, err := a.AnalyzeSkillGap(ctx, user, careerTitle)
	if err != nil {
		a.log.Error("error fetching skill gap analysis", "err", err, "career_title", careerTitle)
		metrics.AnalysesServed.WithLabelValues(string(store.KindSkillGap), "true").Inc()
		return EmptySkillGap()
	}
	metrics.AnalysesServed.WithLabelValues(string(store.KindSkillGap), "false").Inc()
	return result
}

// History returns recently stored analyses, newest first.
func (a *Advisor) History(ctx context.Context, kind store.Kind, limit int) ([]store.Analysis, error) {
	return a.store.ListAnalyses(ctx, kind, limit)
}

// lookup decodes a cached entry into v. Cache errors count as misses.
func (a *Advisor) lookup(ctx context.Context, kind store.Kind, key string, v any) bool {
	data, err := a.cache.Get(ctx, key)
	if err != nil {
		a.log.Warn("cache read failed", "kind", kind, "err", err)
		metrics.CacheLookups.WithLabelValues(string(kind), "error").Inc()
		return false
	}
	if data == nil {
		metrics.CacheLookups.WithLabelValues(string(kind), "miss").Inc()
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		a.log.Warn("failed to decode cached result", "kind", kind, "err", err)
		metrics.CacheLookups.WithLabelValues(string(kind), "error").Inc()
		return false
	}
	metrics.CacheLookups.WithLabelValues(string(kind), "hit").Inc()
	a.log.Debug("cache hit", "kind", kind)
	return true
}

// remember caches and records a successful result. Failures are logged only.
func (a *Advisor) remember(ctx context.Context, kind store.Kind, key, careerTitle string, titles []string, result any) {
	payload, err := json.Marshal(result)
	if err != nil {
		a.log.Warn("failed to marshal result, skipping cache and history", "kind", kind, "err", err)
		return
	}
	if err := a.cache.Set(ctx, key, payload, a.cacheTTL); err != nil {
		a.log.Warn("failed to cache result", "kind", kind, "err", err)
	}
	saved, err := a.store.SaveAnalysis(ctx, store.Analysis{
		Kind:        kind,
		CareerTitle: careerTitle,
		Titles:      titles,
		Payload:     payload,
	})
	if err != nil {
		a.log.Warn("failed to save analysis", "kind", kind, "err", err)
		return
	}
	a.log.Info("analysis saved", "kind", kind, "id", saved.ID, "items", len(titles))
}
