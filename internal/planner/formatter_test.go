package planner

import (
	"strings"
	"testing"
)

func TestFormat_NumberedList(t *testing.T) {
	content := Format("1. Idea A\n2. Idea B")

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	if content.Sections[0].Title != "1" || content.Sections[0].Body != "Idea A" {
		t.Errorf("unexpected first section: %+v", content.Sections[0])
	}

	if content.Sections[1].Title != "2" || content.Sections[1].Body != "Idea B" {
		t.Errorf("unexpected second section: %+v", content.Sections[1])
	}
}

func TestFormat_EmptyInput(t *testing.T) {
	content := Format("")

	if len(content.Sections) != 1 {
		t.Fatalf("expected a single section, got %d", len(content.Sections))
	}

	if content.Sections[0].Title != "" || content.Sections[0].Body != "" {
		t.Errorf("expected empty section, got %+v", content.Sections[0])
	}
}

func TestFormat_NoDelimiters(t *testing.T) {
	raw := "Just a paragraph of advice.\nAnd another line."

	content := Format(raw)

	if len(content.Sections) != 1 {
		t.Fatalf("expected single fallback section, got %d", len(content.Sections))
	}

	if content.Sections[0].Body != raw {
		t.Errorf("expected body to hold the whole text, got '%s'", content.Sections[0].Body)
	}
}

func TestFormat_MarkdownHeadings(t *testing.T) {
	raw := "## Positioning\nOwn the beginner angle.\n\n## Pillars\nTutorials and reviews."

	content := Format(raw)

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	if content.Sections[0].Title != "Positioning" {
		t.Errorf("expected title 'Positioning', got '%s'", content.Sections[0].Title)
	}

	if content.Sections[0].Body != "Own the beginner angle." {
		t.Errorf("unexpected body: '%s'", content.Sections[0].Body)
	}

	if content.Sections[1].Title != "Pillars" {
		t.Errorf("expected title 'Pillars', got '%s'", content.Sections[1].Title)
	}
}

func TestFormat_MultilineBodies(t *testing.T) {
	raw := "1. Sourdough basics\nA starter guide.\nCovers feeding schedules.\n2. Aquafaba meringue\nEgg-free technique."

	content := Format(raw)

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	wantBody := "A starter guide.\nCovers feeding schedules."
	if content.Sections[0].Body != wantBody {
		t.Errorf("expected multi-line body '%s', got '%s'", wantBody, content.Sections[0].Body)
	}
}

func TestFormat_PreambleKept(t *testing.T) {
	raw := "Here are your ideas:\n1. First\nBody text."

	content := Format(raw)

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	if content.Sections[0].Title != "" || content.Sections[0].Body != "Here are your ideas:" {
		t.Errorf("expected untitled preamble section, got %+v", content.Sections[0])
	}

	if content.Sections[1].Title != "1" {
		t.Errorf("expected numbered section after preamble, got %+v", content.Sections[1])
	}
}

func TestFormat_ParenthesisNumbering(t *testing.T) {
	content := Format("1) Idea A\n2) Idea B")

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	if content.Sections[0].Title != "1" {
		t.Errorf("expected title '1', got '%s'", content.Sections[0].Title)
	}
}

func TestFormat_RawTextPreserved(t *testing.T) {
	raw := "1. Something"

	content := Format(raw)

	if content.RawText != raw {
		t.Errorf("expected raw text to be preserved, got '%s'", content.RawText)
	}
}

func TestFormat_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"####",
		"#   ",
		"# \n## \n### ",
		"999999999999999999999999. overflow-ish",
		strings.Repeat("1. x\n", 1000),
		"1.",
		")(",
		"### Title with # hash # marks",
	}

	for _, input := range inputs {
		content := Format(input)
		if len(content.Sections) == 0 {
			t.Errorf("expected at least one section for input %q", input)
		}
	}
}

func TestFormat_WhitespaceOnlyInput(t *testing.T) {
	content := Format("   \n\t\n")

	if len(content.Sections) != 1 {
		t.Fatalf("expected single section, got %d", len(content.Sections))
	}

	if content.Sections[0].Body != "" {
		t.Errorf("expected empty body, got '%s'", content.Sections[0].Body)
	}
}

func TestFormat_BlankLinesBetweenItems(t *testing.T) {
	content := Format("1. First idea\n\n2. Second idea\n")

	if len(content.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(content.Sections))
	}

	if content.Sections[0].Body != "First idea" {
		t.Errorf("expected trimmed body, got '%s'", content.Sections[0].Body)
	}
}
