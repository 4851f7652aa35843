package planner

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed prompts/ideas.txt
var ideasPrompt string

//go:embed prompts/calendar.txt
var calendarPrompt string

//go:embed prompts/strategy.txt
var strategyPrompt string

// systemPrompt returns the embedded instruction text for a plan kind.
func systemPrompt(kind PlanKind) string {
	switch kind {
	case PlanCalendar:
		return calendarPrompt
	case PlanStrategy:
		return strategyPrompt
	default:
		return ideasPrompt
	}
}

// timeframeLabel spells out the planning horizon for the model.
func timeframeLabel(tf Timeframe) string {
	switch tf {
	case TimeframeMonth:
		return "the next month"
	case TimeframeQuarter:
		return "the next quarter"
	default:
		return "the next week"
	}
}

// BuildPrompt renders the prompt for a planning request. Pure function:
// identical requests yield byte-identical prompts. Fails only on malformed
// input (empty niche).
func BuildPrompt(req PlanningRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	req = req.Normalize()

	var b strings.Builder
	fmt.Fprintf(&b, "Niche: %s\n", req.Niche)
	if req.Audience != "" {
		fmt.Fprintf(&b, "Target audience: %s\n", req.Audience)
	}
	fmt.Fprintf(&b, "Planning timeframe: %s\n", timeframeLabel(req.Timeframe))
	if len(req.Formats) > 0 {
		fmt.Fprintf(&b, "Content formats: %s\n", strings.Join(req.Formats, ", "))
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords to include: %s\n", strings.Join(req.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Desired length: about %d words\n", req.LengthWords)
	fmt.Fprintf(&b, "Language: %s\n", req.Language)

	return systemPrompt(req.Kind) + "\n" + b.String(), nil
}

// BuildPromptFromTemplate renders a user-defined template by substituting
// {placeholder} variables from the request. Unknown placeholders are left
// as-is; substitution is deterministic.
func BuildPromptFromTemplate(template string, req PlanningRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	req = req.Normalize()

	r := strings.NewReplacer(
		"{niche}", req.Niche,
		"{audience}", req.Audience,
		"{timeframe}", string(req.Timeframe),
		"{formats}", strings.Join(req.Formats, ", "),
		"{tone}", req.Tone,
		"{keywords}", strings.Join(req.Keywords, ", "),
		"{length}", strconv.Itoa(req.LengthWords),
		"{language}", req.Language,
	)
	return r.Replace(template), nil
}
