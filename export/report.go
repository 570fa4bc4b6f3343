// Copyright 2025 The go-appledict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/k3a/html2text"
	"golang.org/x/net/html"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/internal/markup"
)

const reportHeader = `<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Words</title>
  <link rel="stylesheet" href="DefaultStyle.css">
  <link rel="stylesheet" href="CustomStyle.css">
</head>
`

// CustomCSS is the style sheet written next to lookup reports.
const CustomCSS = `.div-entry {
    border-top: 2px solid black;
    padding-bottom: 50px;
}
`

// defaultCSSName is the dictionary style sheet that ships next to
// Body.data.
const defaultCSSName = "DefaultStyle.css"

// WriteReport renders the entries for words as one HTML document: a shared
// header, then each entry's markup pretty-printed inside a styled wrapper.
// Any word that does not resolve aborts the report.
func WriteReport(w io.Writer, d *appledict.Dictionary, lookupWords []string) error {
	if _, err := io.WriteString(w, reportHeader); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if _, err := io.WriteString(w, "<body>"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	for _, word := range lookupWords {
		e, err := d.Lookup(word)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="div-entry">`+"\n"); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if _, err := io.WriteString(w, prettyFragment(e.Content())); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if _, err := io.WriteString(w, "</div>"); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if _, err := io.WriteString(w, "</body>\n</html>\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteReportFile writes a lookup report to outputPath and places style
// sheets next to it: the dictionary's own DefaultStyle.css, copied from
// the directory of dictPath when present, and CustomCSS.
func WriteReportFile(outputPath, dictPath string, d *appledict.Dictionary, lookupWords []string, logger *slog.Logger) error {
	dir := filepath.Dir(outputPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outputPath, err)
	}
	defer f.Close()
	if err := WriteReport(f, d, lookupWords); err != nil {
		return err
	}

	cssPath := filepath.Join(filepath.Dir(dictPath), defaultCSSName)
	if err := copyFile(cssPath, filepath.Join(dir, defaultCSSName)); err != nil {
		logger.Warn("dictionary style sheet not copied", "path", cssPath, "error", err)
	}
	customPath := filepath.Join(dir, "CustomStyle.css")
	if err := os.WriteFile(customPath, []byte(CustomCSS), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", customPath, err)
	}
	return nil
}

// Text renders an entry's markup as plain text for terminal display.
func Text(e *appledict.Entry) string {
	return html2text.HTML2Text(e.Content())
}

func copyFile(src, dst string) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

// prettyFragment re-renders a markup fragment with one element per line
// and two-space indentation. Fragments that fail to parse are returned
// unchanged.
func prettyFragment(fragment string) string {
	doc, err := markup.Parse(fragment)
	if err != nil {
		return fragment
	}
	var b strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		writePretty(&b, c, 0)
	}
	return b.String()
}

// voidElements have no closing tag in HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

func writePretty(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			b.WriteString(indent)
			b.WriteString(html.EscapeString(t))
			b.WriteString("\n")
		}
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + key
			}
			b.WriteString(fmt.Sprintf(" %s=%q", key, html.EscapeString(a.Val)))
		}
		if voidElements[n.Data] {
			b.WriteString("/>\n")
			return
		}
		b.WriteString(">\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writePretty(b, c, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("</" + n.Data + ">\n")
	default:
	}
}
