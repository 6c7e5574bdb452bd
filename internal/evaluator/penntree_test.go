// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package evaluator

import "testing"

func TestParsePennTreeFlattensWordsAndSpans(t *testing.T) {
	tree, words, err := ParsePennTree("(S (NP the dog) (VP barks))")
	if err != nil {
		t.Fatalf("ParsePennTree: %v", err)
	}
	if want := []string{"the", "dog", "barks"}; !equalStrings(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
	if tree.Left != 0 || tree.Right != 2 {
		t.Fatalf("root span = [%d,%d], want [0,2]", tree.Left, tree.Right)
	}

	spans := Brackets(tree)
	if len(spans) != 2 {
		t.Fatalf("spans = %v, want 2 non-terminal spans", spans)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
