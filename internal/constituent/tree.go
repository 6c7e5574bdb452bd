// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package constituent

import (
	"sort"

	"github.com/corvidlabs/ccl/internal/brackets"
	"github.com/corvidlabs/ccl/internal/ccltypes"
)

// Node is one node of the exported tree: a terminal carries Word; a
// non-terminal carries Children, ordered left to right.
type Node struct {
	Left, Right ccltypes.Position
	Word        string // non-empty only for terminals
	Children    []*Node
}

// IsTerminal reports whether n is a leaf.
func (n *Node) IsTerminal() bool { return len(n.Children) == 0 }

// Export builds the constituent tree for an utterance whose words are
// given in position order, from layer's final max brackets.
func Export(words []string, layer *brackets.Layer) *Node {
	top := layer.GetMaxBrackets()
	used := make([]bool, len(words))

	var roots []*Node
	for _, b := range top {
		roots = append(roots, buildNode(b, words, used))
	}
	for pos, word := range words {
		if !used[pos] {
			roots = append(roots, &Node{Left: ccltypes.Position(pos), Right: ccltypes.Position(pos), Word: word})
			used[pos] = true
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Left < roots[j].Left })

	if len(roots) == 1 {
		return roots[0]
	}
	return &Node{Left: 0, Right: ccltypes.Position(len(words) - 1), Children: roots}
}

// buildNode recursively converts b and its dominated children into a
// Node, filling in any uncovered terminal positions within b's span.
func buildNode(b *brackets.Bracket, words []string, used []bool) *Node {
	right := b.Right
	if right == brackets.OpenEnd {
		right = ccltypes.Position(len(words) - 1)
	}
	n := &Node{Left: b.Left, Right: right}

	childByLeft := map[ccltypes.Position]*Node{}
	for _, child := range b.Dominated {
		childByLeft[child.Left] = buildNode(child, words, used)
	}

	for pos := b.Left; pos <= right; pos++ {
		if child, ok := childByLeft[pos]; ok {
			n.Children = append(n.Children, child)
			for p := child.Left; p <= child.Right; p++ {
				used[p] = true
			}
			pos = child.Right
			continue
		}
		if !used[pos] && int(pos) < len(words) {
			n.Children = append(n.Children, &Node{Left: pos, Right: pos, Word: words[pos]})
			used[pos] = true
		}
	}
	return n
}
