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

// Package markup implements structural queries over dictionary entry
// fragments.
//
// The headword lives in a namespaced attribute on the fragment root, so it
// is read with a namespace-aware XML token scan. All other queries address
// HTML-like spans by tag, class and role and use a tolerant HTML parse.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// entryPrefix is the namespace prefix used by entry fragments. The
// namespace URI it binds to varies per dictionary file and is read from the
// fragment's own declaration.
const entryPrefix = "d"

var (
	errNoNamespace = errors.New("missing namespace declaration")
	errNoTitle     = errors.New("missing title attribute")
)

// Title extracts the headword from the title attribute of the fragment's
// root element. The attribute is looked up in the namespace the fragment
// declares for the "d" prefix.
func Title(fragment string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(fragment))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", errNoTitle
			}
			return "", fmt.Errorf("parsing entry fragment: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var ns string
		for _, a := range start.Attr {
			if a.Name.Space == "xmlns" && a.Name.Local == entryPrefix {
				ns = a.Value
				break
			}
		}
		if ns == "" {
			return "", errNoNamespace
		}
		for _, a := range start.Attr {
			if a.Name.Space == ns && a.Name.Local == "title" {
				return a.Value, nil
			}
		}
		return "", errNoTitle
	}
}

// Parse parses a fragment into a single container node whose children are
// the fragment's top-level nodes.
func Parse(fragment string) (*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// FindAll returns all nodes under n, in document order, for which match
// returns true.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Children returns the direct element children of n for which match returns
// true.
func Children(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named attribute on n, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SpanWithClass matches span elements whose class attribute equals class
// exactly.
func SpanWithClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && Attr(n, "class") == class
	}
}

// SpanClassContains matches span elements whose class attribute contains
// substr as a substring.
func SpanClassContains(substr string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && strings.Contains(Attr(n, "class"), substr)
	}
}

// SpanWithRole matches span elements whose role attribute equals role.
func SpanWithRole(role string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && Attr(n, "role") == role
	}
}

// LeadingText returns the text content of n preceding its first child
// element. This mirrors the element "text" notion of XML tree libraries,
// where trailing text after child elements belongs to those children.
func LeadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
