// Package report renders assembled publications for review before they are
// written to the data file.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"go.yaml.in/yaml/v3"

	"github.com/vinit-katariya/scholar-sync/internal/datajs"
	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// Format selects the preview output format.
type Format string

const (
	FormatJS       Format = "js"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted values of Format.
var Formats = []Format{FormatJS, FormatYAML, FormatJSON, FormatMarkdown}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// Write renders pubs to w. The js format produces the exact block the sync
// would write, using the block name and note from cfg.
func Write(w io.Writer, f Format, pubs []types.Publication, cfg types.SyncConfig) error {
	switch f {
	case FormatJS:
		_, err := fmt.Fprintln(w, datajs.Serialize(cfg.BlockName, cfg.GeneratorNote, pubs))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pubs); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pubs); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	case FormatMarkdown:
		return writeMarkdown(w, pubs)
	}
	return fmt.Errorf("unknown format %q", f)
}

// cellEscaper keeps titles from breaking the table layout.
var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, pubs []types.Publication) error {
	rows := make([][]string, 0, len(pubs))
	visible := 0
	for _, p := range pubs {
		year := "-"
		if p.Year != nil {
			year = strconv.Itoa(*p.Year)
		}
		venue := "-"
		if p.Venue != nil {
			venue = *p.Venue
		}
		featured := ""
		if p.Visible {
			featured = "yes"
			visible++
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Order),
			fmt.Sprintf("[%s](%s)", cellEscaper.Replace(p.Title), p.URL),
			cellEscaper.Replace(venue),
			string(p.Kind),
			year,
			featured,
		})
	}

	md := markdown.NewMarkdown(w)
	md.H1("Publications")
	md.PlainTextf("%d publications, %d featured.", len(pubs), visible)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Venue", "Type", "Year", "Featured"},
		Rows:   rows,
	})
	return md.Build()
}
