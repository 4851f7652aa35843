package planner

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// ExportText renders sections as plain text, one titled block per section.
func ExportText(content GeneratedContent) []byte {
	var b strings.Builder
	for i, section := range content.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if section.Title != "" {
			fmt.Fprintf(&b, "%s\n", section.Title)
		}
		if section.Body != "" {
			fmt.Fprintf(&b, "%s\n", section.Body)
		}
	}
	return []byte(b.String())
}

// ExportCSV renders the ordered title/body pairs as CSV with a header row.
func ExportCSV(content GeneratedContent) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"title", "body"}); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, section := range content.Sections {
		if err := w.Write([]string{section.Title, section.Body}); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportJSON marshals a full history entry, request settings included.
func ExportJSON(entry *HistoryEntry) ([]byte, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling entry: %w", err)
	}
	return data, nil
}

// ExportFilename builds a slugged filename for a download, e.g.
// "plan-vegan-baking.csv".
func ExportFilename(niche, ext string) string {
	return fmt.Sprintf("plan-%s.%s", Slugify(niche), ext)
}
