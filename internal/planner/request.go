// Package planner holds the content-planning domain: the planning request
// model, deterministic prompt construction, response segmentation, and export.
package planner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kozaktomas/content-planner/internal/ai"
	"github.com/kozaktomas/content-planner/internal/constants"
)

// Timeframe is the calendar horizon the user requests content ideas for.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
)

// ParseTimeframe validates a timeframe string. Empty input defaults to week.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case TimeframeWeek, TimeframeMonth, TimeframeQuarter:
		return Timeframe(s), nil
	case "":
		return TimeframeWeek, nil
	default:
		return "", &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("invalid timeframe: %s", s)}
	}
}

// PlanKind selects what the planner asks the model for.
type PlanKind string

const (
	PlanIdeas    PlanKind = "ideas"
	PlanCalendar PlanKind = "calendar"
	PlanStrategy PlanKind = "strategy"
)

// ParsePlanKind validates a plan kind string. Empty input defaults to ideas.
func ParsePlanKind(s string) (PlanKind, error) {
	switch PlanKind(s) {
	case PlanIdeas, PlanCalendar, PlanStrategy:
		return PlanKind(s), nil
	case "":
		return PlanIdeas, nil
	default:
		return "", &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("invalid plan kind: %s", s)}
	}
}

// PlanningRequest describes one content-planning submission. Immutable once
// built; it never outlives the request/response cycle that created it.
type PlanningRequest struct {
	Niche     string    `json:"niche"`
	Audience  string    `json:"audience"`
	Timeframe Timeframe `json:"timeframe"`
	Formats   []string  `json:"formats"`
	Kind      PlanKind  `json:"kind"`

	// Optional settings carried over from the sidebar of the original planner.
	Tone        string   `json:"tone,omitempty"`
	Language    string   `json:"language,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	LengthWords int      `json:"length_words,omitempty"`
}

// Normalize returns a copy with trimmed fields, defaults applied, and the
// formats/keywords sets deduplicated and sorted so prompt output is stable.
func (r PlanningRequest) Normalize() PlanningRequest {
	r.Niche = strings.TrimSpace(r.Niche)
	r.Audience = strings.TrimSpace(r.Audience)
	r.Tone = strings.TrimSpace(r.Tone)
	r.Language = strings.TrimSpace(r.Language)
	if r.Timeframe == "" {
		r.Timeframe = TimeframeWeek
	}
	if r.Kind == "" {
		r.Kind = PlanIdeas
	}
	if r.Language == "" {
		r.Language = "English"
	}
	if r.LengthWords <= 0 {
		r.LengthWords = constants.DefaultLengthWords
	}
	r.Formats = normalizeSet(r.Formats)
	r.Keywords = normalizeSet(r.Keywords)
	return r
}

// Validate checks the request. Only malformed input fails; optional fields
// may be empty.
func (r PlanningRequest) Validate() error {
	niche := strings.TrimSpace(r.Niche)
	if niche == "" {
		return &ai.Error{Kind: ai.KindValidation, Message: "niche is required"}
	}
	if len(niche) > constants.MaxNicheLength {
		return &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("niche exceeds %d characters", constants.MaxNicheLength)}
	}
	if len(strings.TrimSpace(r.Audience)) > constants.MaxAudienceLength {
		return &ai.Error{Kind: ai.KindValidation, Message: fmt.Sprintf("audience exceeds %d characters", constants.MaxAudienceLength)}
	}
	if _, err := ParseTimeframe(string(r.Timeframe)); err != nil {
		return err
	}
	if _, err := ParsePlanKind(string(r.Kind)); err != nil {
		return err
	}
	return nil
}

// normalizeSet trims, drops empties and duplicates, and sorts.
func normalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
