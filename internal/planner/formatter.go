package planner

import (
	"regexp"
	"strings"
)

// Section is a titled chunk of generated text, e.g. one content idea.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GeneratedContent is the segmented form of a raw model response.
type GeneratedContent struct {
	RawText  string    `json:"raw_text"`
	Sections []Section `json:"sections"`
}

// numberedItem matches numbered list items like "1. Title" or "12) Title".
var numberedItem = regexp.MustCompile(`^\s*(\d+)[.)]\s*(.*)$`)

// heading matches markdown headings up to level four.
var heading = regexp.MustCompile(`^\s*#{1,4}\s+(.*)$`)

// Format splits raw model output into ordered sections. Two delimiter
// conventions are recognized: markdown headings open a section titled with
// the heading text, and numbered list items open a section titled with the
// bare number. Text before the first delimiter becomes an untitled leading
// section; input with no delimiters at all (including the empty string)
// degrades to a single section. Format never fails, whatever the input.
func Format(raw string) GeneratedContent {
	content := GeneratedContent{RawText: raw}

	var current *Section
	var preamble []string
	flushBody := func(lines []string) string {
		return strings.TrimSpace(strings.Join(lines, "\n"))
	}

	var body []string
	closeSection := func() {
		if current != nil {
			current.Body = flushBody(body)
			content.Sections = append(content.Sections, *current)
		}
		body = nil
	}

	for line := range strings.Lines(raw) {
		line = strings.TrimRight(line, "\n")

		if m := heading.FindStringSubmatch(line); m != nil {
			closeSection()
			current = &Section{Title: strings.TrimSpace(m[1])}
			continue
		}
		if m := numberedItem.FindStringSubmatch(line); m != nil {
			closeSection()
			current = &Section{Title: m[1]}
			if rest := strings.TrimSpace(m[2]); rest != "" {
				body = append(body, rest)
			}
			continue
		}

		if current == nil {
			preamble = append(preamble, line)
		} else {
			body = append(body, line)
		}
	}
	closeSection()

	// No delimiters found: best-effort fallback to a single section.
	if len(content.Sections) == 0 {
		content.Sections = []Section{{Body: strings.TrimSpace(raw)}}
		return content
	}

	// Keep text that appeared before the first delimiter.
	if lead := flushBody(preamble); lead != "" {
		content.Sections = append([]Section{{Body: lead}}, content.Sections...)
	}

	return content
}
