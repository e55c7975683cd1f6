package token

import "strings"

// codeName is the tag whose body is opaque: while a plain [code] tag
// is open, the only name the scanner recognizes is code itself.
const codeName = "code"

type scanState int

const (
	scanText scanState = iota
	scanTagName
	scanTagValue
	scanAttrName
	scanAttrValue
)

type scanner struct {
	d      *PosDoc
	tags   map[string]bool
	fold   bool
	dst    []Token
	inCode bool

	state scanState

	// current text run
	text   []byte
	textAt int

	// current bracket sequence
	tagAt    int
	closing  bool
	star     bool
	name     []byte
	val      []byte
	hasVal   bool
	attrKey  []byte
	attrVal  []byte
	attrs    []Attr
	quoted   bool
}

// Tokenize scans src and appends the resulting tokens to dst.  It
// never fails: input that does not form a recognized tag is emitted
// as text, and the raw bytes of the token stream always concatenate
// back to src.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) []Token {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	s := &scanner{
		d:    &PosDoc{d: src},
		tags: make(map[string]bool, len(opt.tags)),
		fold: !opt.caseSensitive,
		dst:  dst,
	}
	for _, name := range opt.tags {
		s.tags[s.norm(name)] = true
	}

	d := src
	n := len(d)
	for i := 0; i < n; i++ {
		c := d[i]
		if c == '\n' {
			s.d.nl(i)
		}
		switch s.state {
		case scanText:
			if c == '[' {
				s.flushText()
				s.startTag(i)
				continue
			}
			s.appendText(d[i:i+1], i)

		case scanTagName:
			switch {
			case c == '*' && !s.closing && len(s.name) == 0:
				s.star = true
				s.name = append(s.name, c)
			case c == '/' && !s.closing && len(s.name) == 0:
				s.closing = true
			case c == ']' || c == ' ' || c == '=':
				nm := s.norm(string(s.name))
				if !s.tags[nm] || (s.inCode && nm != codeName) {
					// Unknown name: the consumed bracket
					// sequence, terminator included, is text.
					s.reject(d[s.tagAt : i+1])
					continue
				}
				switch c {
				case ']':
					s.itemEnd()
					switch {
					case !s.closing && string(s.name) == "*":
						s.emit(Token{
							Type:  TItem,
							Pos:   s.d.Pos(s.tagAt),
							Bytes: d[s.tagAt : i+1],
						})
					case s.closing:
						s.emit(Token{
							Type:  TClose,
							Pos:   s.d.Pos(s.tagAt),
							Bytes: d[s.tagAt : i+1],
							Name:  string(s.name),
						})
						if nm == codeName {
							s.inCode = false
						}
					default:
						s.emit(Token{
							Type:  TOpen,
							Pos:   s.d.Pos(s.tagAt),
							Bytes: d[s.tagAt : i+1],
							Name:  string(s.name),
						})
						if nm == codeName {
							s.inCode = true
						}
					}
					s.state = scanText
				case '=':
					s.hasVal = true
					s.state = scanTagValue
				case ' ':
					s.state = scanAttrName
				}
			default:
				s.name = append(s.name, c)
			}

		case scanTagValue:
			switch {
			case c == ']':
				s.openTag(d[s.tagAt : i+1])
			case c == '"' || c == '\'':
				s.quoted = !s.quoted
				s.val = append(s.val, c)
			case c == ' ' && !s.quoted:
				s.state = scanAttrName
			default:
				s.val = append(s.val, c)
			}

		case scanAttrName:
			if c == '=' {
				s.state = scanAttrValue
			} else {
				s.attrKey = append(s.attrKey, c)
			}

		case scanAttrValue:
			switch {
			case c == ']':
				s.commitAttr()
				s.openTag(d[s.tagAt : i+1])
			case c == '"' || c == '\'':
				s.quoted = !s.quoted
				s.attrVal = append(s.attrVal, c)
			case c == ' ' && !s.quoted:
				s.commitAttr()
				s.state = scanAttrName
			default:
				s.attrVal = append(s.attrVal, c)
			}
		}
	}

	// An unterminated bracket sequence is reconstructed literally so
	// no input is ever dropped.
	if s.state != scanText {
		s.reject(d[s.tagAt:])
	}
	s.flushText()
	return s.dst
}

func (s *scanner) norm(v string) string {
	if s.fold {
		return strings.ToLower(v)
	}
	return v
}

func (s *scanner) startTag(i int) {
	s.state = scanTagName
	s.tagAt = i
	s.closing = false
	s.star = false
	s.name = nil
	s.val = nil
	s.hasVal = false
	s.attrKey = nil
	s.attrVal = nil
	s.attrs = nil
	s.quoted = false
}

func (s *scanner) appendText(b []byte, at int) {
	if len(s.text) == 0 {
		s.textAt = at
	}
	s.text = append(s.text, b...)
}

func (s *scanner) flushText() {
	if len(s.text) == 0 {
		return
	}
	s.dst = append(s.dst, Token{
		Type:  TText,
		Pos:   s.d.Pos(s.textAt),
		Bytes: s.text,
	})
	s.text = nil
}

// itemEnd emits the list-item boundary recorded when the name's first
// character was '*'.  The boundary is observable even when the
// sequence itself is rejected, so it precedes whatever the sequence
// becomes.
func (s *scanner) itemEnd() {
	if !s.star {
		return
	}
	s.star = false
	s.dst = append(s.dst, Token{
		Type: TItemEnd,
		Pos:  s.d.Pos(s.tagAt),
	})
}

func (s *scanner) emit(tok Token) {
	s.flushText()
	s.dst = append(s.dst, tok)
}

func (s *scanner) reject(raw []byte) {
	s.itemEnd()
	s.appendText(raw, s.tagAt)
	s.state = scanText
}

func (s *scanner) commitAttr() {
	s.attrs = append(s.attrs, Attr{Key: string(s.attrKey), Val: string(s.attrVal)})
	s.attrKey = nil
	s.attrVal = nil
}

func (s *scanner) openTag(raw []byte) {
	s.itemEnd()
	tok := Token{
		Type:  TOpen,
		Pos:   s.d.Pos(s.tagAt),
		Bytes: raw,
		Name:  string(s.name),
		Attrs: s.attrs,
	}
	if s.hasVal {
		v := string(s.val)
		tok.Value = &v
	}
	s.emit(tok)
	s.state = scanText
}
