// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package datajs reads and rewrites the publications declaration embedded in
// the website's data.js.
//
// The generated block has the shape
//
//	const publications = [
//	    // NOTE: Auto-generated by scholar-sync
//	    {
//	        title: "...",
//	        url: "...",
//	        venue: "...",
//	        type: "journal",
//	        year: 2023,
//	        visible: true,
//	        order: 0
//	    },
//
//	    { ... }
//	];
//
// Everything outside the block is preserved byte for byte.
package datajs

import (
	"strconv"
	"strings"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

const (
	objectIndent = "    "
	fieldIndent  = "        "
)

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote renders s as a double-quoted string literal. Only backslash and
// double quote are escaped.
func Quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

type field struct {
	key   string
	value string
}

// Serialize renders pubs as a complete `const <name> = [...];` statement.
// The output depends only on its arguments.
func Serialize(name, note string, pubs []types.Publication) string {
	var b strings.Builder
	b.WriteString("const " + name + " = [")
	if len(pubs) == 0 {
		b.WriteString("];")
		return b.String()
	}
	b.WriteString("\n")
	if note != "" {
		b.WriteString(objectIndent + "// " + note + "\n")
	}

	for i, p := range pubs {
		if i > 0 {
			b.WriteString(",\n\n")
		}
		writeObject(&b, p)
	}
	b.WriteString("\n];")
	return b.String()
}

func writeObject(b *strings.Builder, p types.Publication) {
	fields := []field{
		{"title", Quote(p.Title)},
		{"url", Quote(p.URL)},
	}
	if p.Venue != nil && *p.Venue != "" {
		fields = append(fields, field{"venue", Quote(*p.Venue)})
	}
	year := "null"
	if p.Year != nil {
		year = strconv.Itoa(*p.Year)
	}
	fields = append(fields,
		field{"type", Quote(string(p.Kind))},
		field{"year", year},
		field{"visible", strconv.FormatBool(p.Visible)},
		field{"order", strconv.Itoa(p.Order)},
	)

	b.WriteString(objectIndent + "{\n")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(fieldIndent + f.key + ": " + f.value)
	}
	b.WriteString("\n" + objectIndent + "}")
}
