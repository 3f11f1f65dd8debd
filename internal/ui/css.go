package ui

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector Selector
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Selector is a compound selector: an optional node type, any number of classes, an
// optional id, and an optional state (":hover", ":disabled", ":active").
// Combinators are not supported.
type Selector struct {
	Type    string
	Classes []string
	ID      string
	State   string
}

// ParseSelector parses "button.nav:hover", "#cart-badge", ".card.out" and the like.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " >+~[*") {
		return Selector{}, fmt.Errorf("ui: unsupported selector %q", s)
	}
	var sel Selector
	if i := strings.IndexByte(s, ':'); i >= 0 {
		sel.State = s[i+1:]
		s = s[:i]
	}
	i := strings.IndexAny(s, ".#")
	if i < 0 {
		sel.Type = s
		return sel, nil
	}
	sel.Type = s[:i]
	for _, part := range splitKeep(s[i:]) {
		switch {
		case len(part) < 2:
			return Selector{}, fmt.Errorf("ui: empty name in selector %q", s)
		case part[0] == '.':
			sel.Classes = append(sel.Classes, part[1:])
		case sel.ID != "":
			return Selector{}, fmt.Errorf("ui: two ids in selector %q", s)
		default:
			sel.ID = part[1:]
		}
	}
	return sel, nil
}

// splitKeep splits ".a.b#c" into ".a", ".b", "#c".
func splitKeep(s string) []string {
	var out []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '.' || s[i] == '#' {
			out = append(out, s[start:i])
			start = i
		}
	}
	return append(out, s[start:])
}

// Matches reports whether n in state matches the selector.
func (sel Selector) Matches(n *Node, state string) bool {
	if sel.State != "" && sel.State != state {
		return false
	}
	if sel.Type != "" && sel.Type != n.Type {
		return false
	}
	if sel.ID != "" && sel.ID != n.ID {
		return false
	}
	for _, c := range sel.Classes {
		if !n.HasClass(c) {
			return false
		}
	}
	return true
}

func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Type)
	for _, c := range sel.Classes {
		b.WriteString("." + c)
	}
	if sel.ID != "" {
		b.WriteString("#" + sel.ID)
	}
	if sel.State != "" {
		b.WriteString(":" + sel.State)
	}
	return b.String()
}

// ParseCSS parses a stylesheet. At-rules are skipped. A selector list ("a, b") becomes one
// rule per selector; unsupported selectors are an error.
func ParseCSS(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			props[strings.ToLower(d.Property)] = d.Value
		}
		for _, s := range r.Selectors {
			sel, err := ParseSelector(s)
			if err != nil {
				return nil, err
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
	}
	return sheet, nil
}
