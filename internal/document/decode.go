package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseJSON builds the node tree from a JSON token stream. Unlike the YAML
// scanner it accepts every JSON escape (such as "\/") and keeps the text of
// numbers as written.
func parseJSON(content []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	p := &jsonParser{dec: dec, content: content, line: 1}
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return p.node(tok)
}

type jsonParser struct {
	dec     *json.Decoder
	content []byte
	offset  int
	line    int
}

// currentLine returns the line of the last token read.
func (p *jsonParser) currentLine() int {
	off := int(p.dec.InputOffset())
	if off > len(p.content) {
		off = len(p.content)
	}
	if off > p.offset {
		p.line += bytes.Count(p.content[p.offset:off], []byte{'\n'})
		p.offset = off
	}
	return p.line
}

func (p *jsonParser) node(tok json.Token) (*yaml.Node, error) {
	line := p.currentLine()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.mapping(line)
		case '[':
			return p.sequence(line)
		}
		return nil, fmt.Errorf("unexpected %q at line %d", rune(v), line)
	case string:
		return scalarNode("!!str", v, line), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return scalarNode(tag, v.String(), line), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(v), line), nil
	case nil:
		return scalarNode("!!null", "null", line), nil
	}

	return nil, fmt.Errorf("unexpected token %v at line %d", tok, line)
}

func (p *jsonParser) mapping(line int) (*yaml.Node, error) {
	res := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string at line %d", tok, p.currentLine())
		}
		keyNode := scalarNode("!!str", key, p.currentLine())

		tok, err = p.dec.Token()
		if err != nil {
			return nil, err
		}
		value, err := p.node(tok)
		if err != nil {
			return nil, err
		}
		res.Content = append(res.Content, keyNode, value)
	}

	// closing brace
	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *jsonParser) sequence(line int) (*yaml.Node, error) {
	res := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		item, err := p.node(tok)
		if err != nil {
			return nil, err
		}
		res.Content = append(res.Content, item)
	}

	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func scalarNode(tag, value string, line int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line}
}
