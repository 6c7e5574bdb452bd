// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexicon

import "strings"

// DefaultAdjacencyCacheCap bounds the number of distinct adjacency
// positions memoized per (entry, side), matching the 32-position
// adjacency-used bitmap width in internal/ccl.
const DefaultAdjacencyCacheCap = 32

// Lexicon interns surface forms to lexical entries. There is no deletion;
// occurrence counts are bumped only during learning.
type Lexicon struct {
	entries map[string]*Entry

	topKMaxLen  int
	labelMaxLen int
	adjCacheCap int
	sink        FlushSink
}

// Option configures a Lexicon at construction time.
type Option func(*Lexicon)

// WithFlushSink installs a sink that receives stat rows evicted from an
// entry's adjacency-position cache.
func WithFlushSink(sink FlushSink) Option {
	return func(l *Lexicon) { l.sink = sink }
}

// WithAdjacencyCacheCap overrides DefaultAdjacencyCacheCap.
func WithAdjacencyCacheCap(n int) Option {
	return func(l *Lexicon) { l.adjCacheCap = n }
}

// New returns an empty lexicon. topKMaxLen and labelMaxLen come from
// config.Config's StatisticsTopListMaxLen and MaxLabels.
func New(topKMaxLen, labelMaxLen int, opts ...Option) *Lexicon {
	l := &Lexicon{
		entries:     map[string]*Entry{},
		topKMaxLen:  topKMaxLen,
		labelMaxLen: labelMaxLen,
		adjCacheCap: DefaultAdjacencyCacheCap,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// key normalizes a surface form the way the lexicon interns it: lowercased.
func key(name string) string {
	return strings.ToLower(name)
}

// GetOrCreate interns name and returns its entry, creating an empty one on
// first use.
func (l *Lexicon) GetOrCreate(name string) *Entry {
	k := key(name)
	if e, ok := l.entries[k]; ok {
		return e
	}
	e := newEntry(k, l.topKMaxLen, l.adjCacheCap, l.labelMaxLen, l.sink)
	l.entries[k] = e
	return e
}

// Lookup returns name's entry without creating one.
func (l *Lexicon) Lookup(name string) (*Entry, bool) {
	e, ok := l.entries[key(name)]
	return e, ok
}

// Observe increments name's occurrence count. It is called only from the
// learning queue's realize step.
func (l *Lexicon) Observe(name string) {
	l.GetOrCreate(name).Occurrences++
}

// Len returns the number of interned surface forms.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Words returns every interned surface form, unordered.
func (l *Lexicon) Words() []string {
	out := make([]string, 0, len(l.entries))
	for k := range l.entries {
		out = append(out, k)
	}
	return out
}
