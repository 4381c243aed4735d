// Package docmeta builds the lightweight document metadata records the
// sidebar package consumes, from raw markdown sources. It recognizes YAML
// front matter fenced by "---" and TOML front matter fenced by "+++", and
// falls back to the first top-level heading for the title.
package docmeta

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/docfold/docnav/sidebar"
)

// FrontMatter holds the front-matter keys relevant to navigation.
type FrontMatter struct {
	// Title overrides the heading-derived title when present.
	Title string `yaml:"title" toml:"title"`

	// SidebarLabel and PaginationLabel feed the navigation-link title
	// precedence. Pointers keep "absent" distinct from an explicitly
	// empty label.
	SidebarLabel    *string `yaml:"sidebar_label" toml:"sidebar_label"`
	PaginationLabel *string `yaml:"pagination_label" toml:"pagination_label"`
}

// Document is the parsed metadata of one markdown source.
type Document struct {
	FrontMatter FrontMatter

	// Title is the resolved title: front-matter title if present, else the
	// first level-1 heading, else empty.
	Title string

	// BodyStart is the 1-indexed line where the markdown body begins, after
	// any front matter.
	BodyStart int
}

// Metadata adapts the document to the record the sidebar title resolver
// reads, attaching the permalink the documents subsystem routed it to.
func (d *Document) Metadata(permalink string) sidebar.DocMetadata {
	return sidebar.DocMetadata{
		Title:     d.Title,
		Permalink: permalink,
		FrontMatter: sidebar.DocFrontMatter{
			PaginationLabel: d.FrontMatter.PaginationLabel,
			SidebarLabel:    d.FrontMatter.SidebarLabel,
		},
	}
}

// Parse extracts navigation metadata from markdown content. A document
// without front matter, or with an unclosed fence, is not an error: the
// fence is treated as body text and only the heading fallback applies.
func Parse(content string) (*Document, error) {
	lines := strings.Split(content, "\n")

	doc := &Document{BodyStart: 1}

	fence, endLine, ok := frontMatterBounds(lines)
	if ok {
		raw := strings.Join(lines[1:endLine], "\n")
		if err := decodeFrontMatter(fence, raw, &doc.FrontMatter); err != nil {
			return nil, err
		}
		doc.BodyStart = endLine + 2 // line after the closing fence, 1-indexed
	}

	doc.Title = doc.FrontMatter.Title
	if doc.Title == "" {
		body := strings.Join(lines[doc.BodyStart-1:], "\n")
		doc.Title = FirstHeading(body)
	}

	return doc, nil
}

// frontMatterBounds detects a front-matter block. Front matter is only
// recognized when the very first line is a fence; an unclosed fence is
// reported as absent.
func frontMatterBounds(lines []string) (fence string, endLine int, ok bool) {
	if len(lines) == 0 {
		return "", -1, false
	}
	fence = strings.TrimSpace(lines[0])
	if fence != "---" && fence != "+++" {
		return "", -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fence {
			return fence, i, true
		}
	}
	return "", -1, false
}

func decodeFrontMatter(fence, raw string, fm *FrontMatter) error {
	switch fence {
	case "---":
		if err := yaml.Unmarshal([]byte(raw), fm); err != nil {
			return fmt.Errorf("failed to parse YAML front matter: %w", err)
		}
	case "+++":
		if err := toml.Unmarshal([]byte(raw), fm); err != nil {
			return fmt.Errorf("failed to parse TOML front matter: %w", err)
		}
	}
	return nil
}
