package dom

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrBadSelector is returned for selectors outside the supported subset.
var ErrBadSelector = errors.New("unsupported selector")

// compoundSelector is one whitespace-separated part of a selector such as
// input#name.wide[type=text].
type compoundSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrSelector
}

type attrSelector struct {
	name     string
	value    string
	hasValue bool
}

// QuerySelector returns the first element in tree order matching selector.
// Only type, id, class and attribute selectors joined by the descendant
// combinator are understood.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselector
func (d *HTMLDocument) QuerySelector(selector string) (*Node, error) {
	return d.Node.QuerySelector(selector)
}

func (n *Node) QuerySelector(selector string) (*Node, error) {
	parts, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}

	var found *Node
	for _, child := range n.ChildNodes {
		walk(child, func(c *Node) bool {
			if c.NodeType == ElementNode && matchesChain(c, n, parts) {
				found = c
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found, nil
}

func parseSelector(selector string) ([]compoundSelector, error) {
	fields := strings.Fields(selector)
	if len(fields) == 0 {
		return nil, errors.Wrapf(ErrBadSelector, "empty selector %q", selector)
	}
	parts := make([]compoundSelector, 0, len(fields))
	for _, f := range fields {
		c, err := parseCompound(f)
		if err != nil {
			return nil, errors.Wrapf(err, "selector %q", selector)
		}
		parts = append(parts, c)
	}
	return parts, nil
}

func parseCompound(s string) (compoundSelector, error) {
	var c compoundSelector
	i := 0
	readName := func() string {
		start := i
		for i < len(s) && !strings.ContainsRune("#.[>+~,:()]", rune(s[i])) {
			i++
		}
		return s[start:i]
	}

	if i < len(s) && s[i] != '#' && s[i] != '.' && s[i] != '[' {
		c.tag = strings.ToLower(readName())
		if c.tag == "*" {
			c.tag = ""
		}
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			if c.id = readName(); c.id == "" {
				return c, errors.Wrap(ErrBadSelector, "missing id")
			}
		case '.':
			i++
			class := readName()
			if class == "" {
				return c, errors.Wrap(ErrBadSelector, "missing class")
			}
			c.classes = append(c.classes, class)
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return c, errors.Wrap(ErrBadSelector, "unterminated attribute selector")
			}
			c.attrs = append(c.attrs, parseAttrSelector(s[i+1:i+end]))
			i += end + 1
		default:
			return c, errors.Wrapf(ErrBadSelector, "unexpected %q", s[i])
		}
	}
	return c, nil
}

func parseAttrSelector(body string) attrSelector {
	name, value, ok := strings.Cut(body, "=")
	a := attrSelector{name: strings.ToLower(strings.TrimSpace(name))}
	if ok {
		a.hasValue = true
		a.value = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return a
}

func (c compoundSelector) matches(n *Node) bool {
	if c.tag != "" && n.LocalName != c.tag {
		return false
	}
	if c.id != "" && n.ID() != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := map[string]bool{}
		for _, class := range n.ClassList() {
			have[class] = true
		}
		for _, class := range c.classes {
			if !have[class] {
				return false
			}
		}
	}
	for _, a := range c.attrs {
		attr := n.Attributes.GetNamedItem(a.name)
		if attr == nil || (a.hasValue && attr.Value != a.value) {
			return false
		}
	}
	return true
}

// matchesChain checks the last compound against n and the rest against its
// ancestors below scope.
func matchesChain(n, scope *Node, parts []compoundSelector) bool {
	last := len(parts) - 1
	if !parts[last].matches(n) {
		return false
	}
	i := last - 1
	for a := n.ParentElement(); a != nil && a != scope && i >= 0; a = a.ParentElement() {
		if parts[i].matches(a) {
			i--
		}
	}
	return i < 0
}
