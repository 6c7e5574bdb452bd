// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package evaluator

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/constituent"
)

// ParsePennTree parses one Penn-Treebank bracketed line, e.g.
// "(S (NP the dog) (VP barks))", into a gold constituent.Node tree plus
// the flat sequence of terminal words, for comparison against a parsed
// utterance's Export() output via Brackets/Score.
func ParsePennTree(line string) (*constituent.Node, []string, error) {
	toks := tokenizePennTree(line)
	p := &pennParser{toks: toks}
	node, err := p.parseNode()
	if err != nil {
		return nil, nil, err
	}
	if p.pos != len(p.toks) {
		return nil, nil, fmt.Errorf("evaluator: trailing tokens after tree")
	}
	var words []string
	var collect func(n *constituent.Node)
	collect = func(n *constituent.Node) {
		if n.IsTerminal() {
			words = append(words, n.Word)
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(node)
	renumber(node, new(int))
	return node, words, nil
}

// renumber assigns Left/Right terminal positions in left-to-right order,
// since the bracketed input carries no position information itself.
func renumber(n *constituent.Node, next *int) {
	if n.IsTerminal() {
		n.Left = ccltypes.Position(*next)
		n.Right = n.Left
		*next++
		return
	}
	for _, c := range n.Children {
		renumber(c, next)
	}
	n.Left = n.Children[0].Left
	n.Right = n.Children[len(n.Children)-1].Right
}

func tokenizePennTree(line string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, ch := range line {
		switch ch {
		case '(', ')':
			flush()
			toks = append(toks, string(ch))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur.WriteRune(ch)
		}
	}
	flush()
	return toks
}

type pennParser struct {
	toks []string
	pos  int
}

func (p *pennParser) parseNode() (*constituent.Node, error) {
	if p.pos >= len(p.toks) || p.toks[p.pos] != "(" {
		return nil, fmt.Errorf("evaluator: expected '(' at token %d", p.pos)
	}
	p.pos++ // consume "("

	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("evaluator: unexpected end of input")
	}
	p.pos++ // consume the label/tag token; labels are not modeled downstream

	n := &constituent.Node{}
	for p.pos < len(p.toks) && p.toks[p.pos] != ")" {
		if p.toks[p.pos] == "(" {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			continue
		}
		n.Children = append(n.Children, &constituent.Node{Word: p.toks[p.pos]})
		p.pos++
	}
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("evaluator: missing closing ')'")
	}
	p.pos++ // consume ")"

	if len(n.Children) == 0 {
		return nil, fmt.Errorf("evaluator: empty constituent")
	}
	return n, nil
}
