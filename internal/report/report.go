// Package report renders summaries for the terminal or for other tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"hitsum/internal/domain"
	"hitsum/internal/hits"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// Write renders reports to w in the given format. An empty format means text.
func Write(w io.Writer, format string, reports []domain.Report) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return writeText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, reports []domain.Report) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		s := r.Summary
		fmt.Fprintf(&b, "== %s (%d sentences, %d tokens, %d iterations)\n",
			r.Document, s.SentenceCount, s.VocabularySize, s.Iterations)
		writeRanked(&b, "Top sentences", s.Sentences)
		writeRanked(&b, "Top tokens", s.Tokens)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRanked(b *strings.Builder, title string, items []hits.Ranked) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, r := range items {
		fmt.Fprintf(b, "  %2d. %.4f  %s\n", i+1, r.Score, r.Label)
	}
}
