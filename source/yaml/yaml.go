// Package yaml turns a single YAML document into engine tokens using
// gopkg.in/yaml.v3. Scalars are typed by their resolved YAML tag.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/skemalab/internal/engine"
)

// ErrNonScalarKey is returned when a mapping key is not a scalar.
var ErrNonScalarKey = errors.New("yaml: mapping keys must be scalars")

type source struct {
	r      io.Reader
	toks   []eng.Token
	pos    int
	loaded bool
	err    error
	size   int64
}

// NewReader wraps an io.Reader holding one YAML document into an
// engine.TokenSource. The document is read on the first NextToken call.
func NewReader(r io.Reader) eng.TokenSource { return &source{r: r, size: -1} }

func (s *source) NextToken() (eng.Token, error) {
	if !s.loaded {
		s.load()
	}
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return s.size }

func (s *source) load() {
	s.loaded = true
	data, err := io.ReadAll(s.r)
	if err != nil {
		s.err = err
		return
	}
	s.size = int64(len(data))
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		s.err = err
		return
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		s.err = io.EOF
		return
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		s.err = fmt.Errorf("%w: second YAML document at line %d", eng.ErrTrailingData, extra.Line)
		return
	case !errors.Is(err, io.EOF):
		s.err = err
		return
	}
	s.err = s.emit(doc.Content[0], 0)
}

const maxAliasDepth = 1000

func (s *source) emit(n *yaml.Node, depth int) error {
	if depth > maxAliasDepth {
		return fmt.Errorf("yaml: nesting too deep at line %d", n.Line)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return s.push(eng.Token{Kind: eng.KindNull})
		}
		return s.emit(n.Content[0], depth+1)
	case yaml.AliasNode:
		return s.emit(n.Alias, depth+1)
	case yaml.MappingNode:
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w (line %d)", ErrNonScalarKey, k.Line)
			}
			s.toks = append(s.toks, eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			if err := s.emit(n.Content[i+1], depth+1); err != nil {
				return err
			}
		}
		return s.push(eng.Token{Kind: eng.KindEndObject})
	case yaml.SequenceNode:
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			if err := s.emit(c, depth+1); err != nil {
				return err
			}
		}
		return s.push(eng.Token{Kind: eng.KindEndArray})
	case yaml.ScalarNode:
		tok, err := scalar(n)
		if err != nil {
			return err
		}
		return s.push(tok)
	}
	return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func (s *source) push(t eng.Token) error {
	t.Offset = -1
	s.toks = append(s.toks, t)
	return nil
}

func scalar(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}, nil
	case "!!int":
		if _, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: n.Value}, nil
		}
		var i int64
		if err := n.Decode(&i); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10)}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return eng.Token{}, fmt.Errorf("yaml: %q at line %d is not a JSON number", n.Value, n.Line)
		}
		if _, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: n.Value}, nil
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value}, nil
	}
}
