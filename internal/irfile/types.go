package irfile

import "fmt"

// typeExpr is a parsed type string such as "Map<K, List<V>?>?".
type typeExpr struct {
	name     string
	args     []*typeExpr
	nullable bool
}

type typeParser struct {
	src string
	pos int
}

func parseType(s string) (*typeExpr, error) {
	p := &typeParser{src: s}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected %q in type %q", p.src[p.pos:], s)
	}
	return t, nil
}

func (p *typeParser) parse() (*typeExpr, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("expected a type name at offset %d in %q", p.pos, p.src)
	}
	t := &typeExpr{name: p.src[start:p.pos]}

	p.skipSpace()
	if p.peek('<') {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			t.args = append(t.args, arg)
			p.skipSpace()
			if p.peek(',') {
				p.pos++
				continue
			}
			if p.peek('>') {
				p.pos++
				break
			}
			return nil, fmt.Errorf("expected ',' or '>' at offset %d in %q", p.pos, p.src)
		}
		p.skipSpace()
	}
	if p.peek('?') {
		p.pos++
		t.nullable = true
	}
	return t, nil
}

func (p *typeParser) peek(c byte) bool {
	return p.pos < len(p.src) && p.src[p.pos] == c
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c == '.' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
