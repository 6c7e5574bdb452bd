// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFinalAlwaysReports(t *testing.T) {
	var buf bytes.Buffer
	tk := New(&buf, time.Hour)
	tk.Observe(5)
	tk.Final()

	if !strings.Contains(buf.String(), "1 utterances") {
		t.Fatalf("output = %q, want it to mention 1 utterance", buf.String())
	}
	if !strings.Contains(buf.String(), "5 words") {
		t.Fatalf("output = %q, want it to mention 5 words", buf.String())
	}
}
