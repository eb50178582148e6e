package datajs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vinit-katariya/scholar-sync/pkg/types"
)

// ParseBlock reads a `const <name> = [...]` declaration of object literals
// back into publications. It understands the subset of literal syntax that
// Serialize emits plus hand-written blocks: double-quoted strings, integers,
// true/false/null, line comments and block comments. Unknown keys are ignored so older
// hand-edited blocks still parse.
func ParseBlock(block string) (string, []types.Publication, error) {
	p := &parser{src: block}

	if err := p.expectWord("const"); err != nil {
		return "", nil, err
	}
	name, err := p.ident()
	if err != nil {
		return "", nil, err
	}
	for _, c := range []byte{'=', '['} {
		if err := p.expect(c); err != nil {
			return "", nil, err
		}
	}

	var pubs []types.Publication
	for {
		p.skip()
		if p.peek() == ']' {
			p.pos++
			break
		}
		pub, err := p.object()
		if err != nil {
			return "", nil, err
		}
		pubs = append(pubs, pub)

		p.skip()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			return "", nil, p.errorf("expected ',' or ']'")
		}
	}
	return name, pubs, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("parsing block at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// skip advances past whitespace, line comments and block comments.
func (p *parser) skip() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "//"):
			nl := strings.IndexByte(p.src[p.pos:], '\n')
			if nl < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += nl + 1
			}
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			closing := strings.Index(p.src[p.pos+2:], "*/")
			if closing < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += 2 + closing + 2
			}
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) error {
	p.skip()
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *parser) expectWord(w string) error {
	got, err := p.ident()
	if err != nil {
		return err
	}
	if got != w {
		return p.errorf("expected %q, got %q", w, got)
	}
	return nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func (p *parser) ident() (string, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return "", p.errorf("expected identifier")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) object() (types.Publication, error) {
	var pub types.Publication
	if err := p.expect('{'); err != nil {
		return pub, err
	}
	for {
		p.skip()
		if p.peek() == '}' {
			p.pos++
			return pub, nil
		}
		key, err := p.ident()
		if err != nil {
			return pub, err
		}
		if err := p.expect(':'); err != nil {
			return pub, err
		}
		v, err := p.value()
		if err != nil {
			return pub, err
		}
		if err := assign(&pub, key, v); err != nil {
			return pub, p.errorf("%v", err)
		}

		p.skip()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
		default:
			return pub, p.errorf("expected ',' or '}'")
		}
	}
}

// literal is a parsed scalar value.
type literal struct {
	str    *string
	num    *int
	boolV  *bool
	isNull bool
}

func (p *parser) value() (literal, error) {
	p.skip()
	switch c := p.peek(); {
	case c == '"':
		s, err := p.str()
		return literal{str: &s}, err
	case c == '-' || c >= '0' && c <= '9':
		start := p.pos
		p.pos++
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		n, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return literal{}, p.errorf("bad number %q", p.src[start:p.pos])
		}
		return literal{num: &n}, nil
	default:
		w, err := p.ident()
		if err != nil {
			return literal{}, err
		}
		switch w {
		case "null":
			return literal{isNull: true}, nil
		case "true", "false":
			b := w == "true"
			return literal{boolV: &b}, nil
		}
		return literal{}, p.errorf("unexpected value %q", w)
	}
}

func (p *parser) str() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", p.errorf("unterminated escape")
			}
			p.pos++
			switch e := p.src[p.pos]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
		p.pos++
	}
	return "", p.errorf("unterminated string")
}

func assign(pub *types.Publication, key string, v literal) error {
	switch key {
	case "title", "url", "venue", "type":
		if v.str == nil {
			return fmt.Errorf("%s must be a string", key)
		}
		switch key {
		case "title":
			pub.Title = *v.str
		case "url":
			pub.URL = *v.str
		case "venue":
			venue := *v.str
			pub.Venue = &venue
		case "type":
			pub.Kind = types.Kind(*v.str)
		}
	case "year":
		switch {
		case v.isNull:
			pub.Year = nil
		case v.num != nil:
			y := *v.num
			pub.Year = &y
		default:
			return fmt.Errorf("year must be an integer or null")
		}
	case "visible":
		if v.boolV == nil {
			return fmt.Errorf("visible must be a boolean")
		}
		pub.Visible = *v.boolV
	case "order":
		if v.num == nil {
			return fmt.Errorf("order must be an integer")
		}
		pub.Order = *v.num
	}
	return nil
}
