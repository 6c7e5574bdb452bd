// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Ticker reports utterance/word counts at a fixed interval, formatting
// large counts and elapsed time with go-humanize the way a human reads a
// running total rather than a raw integer.
type Ticker struct {
	out      io.Writer
	interval time.Duration
	started  time.Time
	last     time.Time

	utterances, words int64
}

// New returns a Ticker that writes to out every interval.
func New(out io.Writer, interval time.Duration) *Ticker {
	now := time.Now()
	return &Ticker{out: out, interval: interval, started: now, last: now}
}

// Observe records one utterance of wordCount words, writing a progress
// line to out if interval has elapsed since the last report.
func (t *Ticker) Observe(wordCount int) {
	t.utterances++
	t.words += int64(wordCount)

	now := time.Now()
	if now.Sub(t.last) < t.interval {
		return
	}
	t.last = now
	t.report(now)
}

// Final always writes a closing report, regardless of interval.
func (t *Ticker) Final() {
	t.report(time.Now())
}

func (t *Ticker) report(now time.Time) {
	elapsed := now.Sub(t.started)
	fmt.Fprintf(t.out, "progress: %s utterances, %s words, elapsed %s (started %s)\n",
		humanize.Comma(t.utterances), humanize.Comma(t.words),
		elapsed.Round(time.Millisecond), humanize.Time(t.started))
}
