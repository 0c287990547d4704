// File: services/intelligence/reorder.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/matching"

	"go.uber.org/zap"
)

const defaultReorderTimeout = 8 * time.Second

var orderPattern = regexp.MustCompile(`\[[^\[\]]*\]`)

// ErrMalformedOrder is returned when the model reply holds no usable id list.
var ErrMalformedOrder = errors.New("model did not return a JSON array of session ids")

type GeminiReorderer struct {
	gen     TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

func NewGeminiReorderer(gen TextGenerator, timeout time.Duration, logger *zap.Logger) *GeminiReorderer {
	if timeout <= 0 {
		timeout = defaultReorderTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiReorderer{gen: gen, timeout: timeout, logger: logger}
}

// Reorder makes a single bounded call to the model. On any error the caller
// keeps its own ordering; the input slice is never modified.
func (r *GeminiReorderer) Reorder(ctx context.Context, sessions []models.ScoredSession, profile models.UserProfile) ([]models.ScoredSession, error) {
	if len(sessions) <= 1 {
		return sessions, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt, err := BuildReorderPrompt(sessions, profile)
	if err != nil {
		return nil, err
	}
	reply, err := r.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("reorder request failed: %w", err)
	}

	order, err := ParseOrder(reply)
	if err != nil {
		r.logger.Warn("AI reorder returned unusable output", zap.String("reply", reply))
		return nil, err
	}
	if !namesAny(sessions, order) {
		r.logger.Warn("AI reorder named no known session", zap.Strings("order", order))
		return nil, fmt.Errorf("%w: no id matches a candidate", ErrMalformedOrder)
	}
	return ApplyOrder(sessions, order), nil
}

func namesAny(sessions []models.ScoredSession, order []string) bool {
	known := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		known[s.ID] = struct{}{}
	}
	for _, id := range order {
		if _, ok := known[id]; ok {
			return true
		}
	}
	return false
}

// BuildReorderPrompt renders the abstracted candidates and profile into the model prompt.
func BuildReorderPrompt(sessions []models.ScoredSession, profile models.UserProfile) (string, error) {
	candidates := make([]models.ReorderCandidate, len(sessions))
	for i, s := range sessions {
		category := s.Category
		if category == "" {
			category = matching.CategoryGeneral
		}
		candidates[i] = models.ReorderCandidate{
			ID:            s.ID,
			StartTime:     matching.ParseSessionDateTime(s.Date, s.Time).Format(time.RFC3339),
			DurationHours: matching.ParseDuration(s.Duration),
			Score:         s.Score,
			Category:      category,
		}
	}
	payload, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reorder candidates: %w", err)
	}

	industry := profile.Industry
	if industry == "" {
		industry = "General"
	}
	focus := "None specified"
	if len(profile.Focus) > 0 {
		focus = strings.Join(profile.Focus, ", ")
	}

	var sb strings.Builder
	sb.WriteString("You are a strict schedule optimizer focused on user preference matching.\n\n")
	sb.WriteString("Sessions (JSON):\n")
	sb.Write(payload)
	sb.WriteString("\n\nUser requirements:\n")
	fmt.Fprintf(&sb, "- Industry: %s\n", industry)
	fmt.Fprintf(&sb, "- Focus areas: %s\n\n", focus)
	sb.WriteString("Rules, in priority order:\n")
	sb.WriteString("1. Sessions that directly match the industry and focus areas come first.\n")
	sb.WriteString("2. Order from foundational to advanced concepts.\n")
	sb.WriteString("3. Prefer gaps of at most 90 minutes between consecutive sessions.\n")
	sb.WriteString("4. When relevance is equal, higher scores come first.\n\n")
	sb.WriteString(`Return ONLY a JSON array of the session ids in the optimized order, e.g. ["a1", "b2"].`)
	return sb.String(), nil
}

// ParseOrder extracts the first JSON array of ids from a model reply.
// Both string and numeric ids are accepted.
func ParseOrder(reply string) ([]string, error) {
	match := orderPattern.FindString(reply)
	if match == "" {
		return nil, ErrMalformedOrder
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(match)))
	dec.UseNumber()
	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOrder, err)
	}
	if len(raw) == 0 {
		return nil, ErrMalformedOrder
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		switch id := v.(type) {
		case string:
			ids = append(ids, id)
		case json.Number:
			ids = append(ids, id.String())
		default:
			return nil, ErrMalformedOrder
		}
	}
	return ids, nil
}

// ApplyOrder places sessions named in order first, then any the model left out in their original order.
// Unknown and repeated ids are ignored.
func ApplyOrder(sessions []models.ScoredSession, order []string) []models.ScoredSession {
	byID := make(map[string]int, len(sessions))
	for i, s := range sessions {
		byID[s.ID] = i
	}

	used := make([]bool, len(sessions))
	result := make([]models.ScoredSession, 0, len(sessions))
	for _, id := range order {
		idx, ok := byID[id]
		if !ok || used[idx] {
			continue
		}
		used[idx] = true
		result = append(result, sessions[idx])
	}
	for i, s := range sessions {
		if !used[i] {
			result = append(result, s)
		}
	}
	return result
}
