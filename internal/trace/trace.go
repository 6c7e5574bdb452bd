// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package trace

import (
	"log/slog"

	"github.com/corvidlabs/ccl/internal/config"
)

// Kind classifies a trace event against the trace_bits mask, mirroring
// config.TraceBit one-for-one.
type Kind int

const (
	Utterance Kind = iota
	CCLSet
	Parser
	Filter
	Eval
)

func (k Kind) bit() config.TraceBit {
	switch k {
	case Utterance:
		return config.TraceUtterance
	case CCLSet:
		return config.TraceCCLSet
	case Parser:
		return config.TraceParser
	case Filter:
		return config.TraceFilter
	case Eval:
		return config.TraceEval
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case Utterance:
		return "utterance"
	case CCLSet:
		return "ccl-set"
	case Parser:
		return "parser"
	case Filter:
		return "filter"
	case Eval:
		return "eval"
	default:
		return "unknown"
	}
}

// Sink receives trace events from internal/parser.Session. Library
// packages never log directly; Session calls Sink so
// the CLI layer decides whether and how to render them.
type Sink interface {
	Event(kind Kind, msg string, args ...any)
}

// NopSink discards every event; it is the default Session sink when no
// tracing is configured.
type NopSink struct{}

func (NopSink) Event(Kind, string, ...any) {}

// SlogSink forwards events whose Kind bit is set in Bits to Logger at
// debug level, tagging each record with the Kind's name.
type SlogSink struct {
	Logger *slog.Logger
	Bits   config.TraceBit
}

// NewSlogSink returns a sink filtering against cfg.TraceBits.
func NewSlogSink(logger *slog.Logger, cfg *config.Config) *SlogSink {
	return &SlogSink{Logger: logger, Bits: cfg.TraceBits}
}

func (s *SlogSink) Event(kind Kind, msg string, args ...any) {
	if s.Bits&kind.bit() == 0 {
		return
	}
	s.Logger.Debug(msg, append([]any{"trace", kind.String()}, args...)...)
}
