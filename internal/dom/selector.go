package dom

import (
	"fmt"
	"strings"
)

type matcher struct {
	tag     string
	id      string
	classes []string
}

func (m matcher) match(e *Element) bool {
	if m.tag != "" && !strings.EqualFold(m.tag, e.Tag) {
		return false
	}
	if m.id != "" && m.id != e.ID {
		return false
	}
	for _, c := range m.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// parseSelector parses a single compound selector
func parseSelector(sel string) (matcher, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return matcher{}, fmt.Errorf("empty selector")
	}
	if strings.ContainsAny(sel, " >+~[:,") {
		return matcher{}, fmt.Errorf("unsupported selector: %q", sel)
	}

	var m matcher
	var kind byte
	start := 0
	flush := func(end int) error {
		tok := sel[start:end]
		switch kind {
		case 0:
			m.tag = tok
		case '#':
			if tok == "" {
				return fmt.Errorf("empty id in selector %q", sel)
			}
			m.id = tok
		case '.':
			if tok == "" {
				return fmt.Errorf("empty class in selector %q", sel)
			}
			m.classes = append(m.classes, tok)
		}
		return nil
	}

	for i := 0; i < len(sel); i++ {
		if sel[i] != '#' && sel[i] != '.' {
			continue
		}
		if err := flush(i); err != nil {
			return matcher{}, err
		}
		kind = sel[i]
		start = i + 1
	}
	if err := flush(len(sel)); err != nil {
		return matcher{}, err
	}
	return m, nil
}
