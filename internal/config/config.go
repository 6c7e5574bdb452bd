// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/corvidlabs/ccl/cerrs"
)

// TraceBit is a single bit in the trace_bits mask.
type TraceBit uint32

const (
	TraceUtterance TraceBit = 1 << iota
	TraceCCLSet
	TraceParser
	TraceFilter
	TraceEval
)

// PrintingMode is one flag from the printing_mode set.
type PrintingMode string

const (
	PrintTiming         PrintingMode = "timing"
	PrintObjCount       PrintingMode = "obj_count"
	PrintExtraParse     PrintingMode = "extra_parse"
	PrintMoreExtraParse PrintingMode = "more_extra_parse"
	PrintSourceText     PrintingMode = "source_text"
	PrintExtraEval      PrintingMode = "extra_eval"
	PrintConfig         PrintingMode = "config"
)

// Config collects the recognized options from into a single
// immutable struct handed to each parse session, rather than process-wide
// mutable globals.
type Config struct {
	StatisticsTopListMaxLen uint32 `json:"statistics_top_list_max_len,omitempty"`
	MaxLabels               uint32 `json:"max_labels,omitempty"`

	UseTagsAsWords  bool `json:"use_tags_as_words,omitempty"`
	UseTagsAsLabels bool `json:"use_tags_as_labels,omitempty"`

	CurrencySymbolIsPunct bool `json:"currency_symbol_is_punct,omitempty"`
	UseStoppingPunct      bool `json:"use_stopping_punct,omitempty"`
	DiscardTerminatingPunct bool `json:"discard_terminating_punct,omitempty"`
	ReversePennObjs       bool `json:"reverse_penn_objs,omitempty"`

	CCLBasicUseBothInValues bool `json:"ccl_basic_use_both_in_values,omitempty"`
	CountTopBracket         bool `json:"count_top_bracket,omitempty"`

	CommentStr  string `json:"comment_str,omitempty"`
	LexMinPrint uint32 `json:"lex_min_print,omitempty"`

	PrintingMode map[PrintingMode]bool `json:"printing_mode,omitempty"`
	TraceBits    TraceBit               `json:"trace_bits,omitempty"`

	// StoppingPunct holds the stopping_punct option: punctuation kinds by
	// their parser.PunctKind constant name. The parser does not read it;
	// its stopping set is the fixed one reported by
	// parser.PunctKind.IsStopping, and UseStoppingPunct only turns that
	// set on or off.
	StoppingPunct []string `json:"stopping_punct,omitempty"`
}

// Default returns the configuration used when no file is present, matching
// the values calls out as defaults.
func Default() *Config {
	return &Config{
		StatisticsTopListMaxLen: 10,
		MaxLabels:               10,
		UseStoppingPunct:        true,
		DiscardTerminatingPunct: false,
		CommentStr:              "#",
		LexMinPrint:             1,
		PrintingMode:            map[PrintingMode]bool{},
		StoppingPunct:           []string{"FullStop", "Question", "Exclamation", "SemiColon", "Dash", "Comma"},
	}
}

// Load reads a "NAME VALUE" configuration file. Lines starting with the
// configured comment string (default "#") are skipped; blank lines are
// skipped. String values extend to the end of the line. Missing files are
// not an error — Default() is returned with debug logging if requested.
func Load(name string, debug bool) (*Config, error) {
	cfg := Default()
	if name == "" {
		return cfg, nil
	}
	if sb, err := os.Stat(name); err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if sb.IsDir() {
		return cfg, cerrs.ErrNotDirectory
	}

	f, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, cfg.CommentStr) {
			continue
		}
		name, value, ok := strings.Cut(line, " ")
		if !ok {
			return cfg, fmt.Errorf("%d: %w", lineNo, cerrs.ErrInvalidConfig)
		}
		value = strings.TrimSpace(value)
		if err := cfg.set(strings.TrimSpace(name), value); err != nil {
			return cfg, fmt.Errorf("%d: %w", lineNo, err)
		}
		if debug {
			log.Printf("[config] %d: %s = %q\n", lineNo, name, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) set(name, value string) error {
	switch name {
	case "statistics_top_list_max_len":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		c.StatisticsTopListMaxLen = uint32(n)
	case "max_labels":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		c.MaxLabels = uint32(n)
	case "use_tags_as_words":
		c.UseTagsAsWords = parseBool(value)
	case "use_tags_as_labels":
		c.UseTagsAsLabels = parseBool(value)
	case "currency_symbol_is_punct":
		c.CurrencySymbolIsPunct = parseBool(value)
	case "use_stopping_punct":
		c.UseStoppingPunct = parseBool(value)
	case "discard_terminating_punct":
		c.DiscardTerminatingPunct = parseBool(value)
	case "reverse_penn_objs":
		c.ReversePennObjs = parseBool(value)
	case "ccl_basic_use_both_in_values":
		c.CCLBasicUseBothInValues = parseBool(value)
	case "count_top_bracket":
		c.CountTopBracket = parseBool(value)
	case "comment_str":
		c.CommentStr = value
	case "lex_min_print":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		c.LexMinPrint = uint32(n)
	case "printing_mode":
		for _, m := range strings.Fields(value) {
			c.PrintingMode[PrintingMode(m)] = true
		}
	case "trace_bits":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return err
		}
		c.TraceBits = TraceBit(n)
	case "stopping_punct":
		c.StoppingPunct = strings.Fields(value)
	default:
		return fmt.Errorf("%s: %w", name, cerrs.ErrInvalidConfig)
	}
	return nil
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Dump renders the configuration as a human-readable block, for the
// PrintConfig printing mode.
func (c *Config) Dump() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "statistics_top_list_max_len %d\n", c.StatisticsTopListMaxLen)
	fmt.Fprintf(&b, "max_labels %d\n", c.MaxLabels)
	fmt.Fprintf(&b, "use_tags_as_words %t\n", c.UseTagsAsWords)
	fmt.Fprintf(&b, "use_tags_as_labels %t\n", c.UseTagsAsLabels)
	fmt.Fprintf(&b, "currency_symbol_is_punct %t\n", c.CurrencySymbolIsPunct)
	fmt.Fprintf(&b, "use_stopping_punct %t\n", c.UseStoppingPunct)
	fmt.Fprintf(&b, "discard_terminating_punct %t\n", c.DiscardTerminatingPunct)
	fmt.Fprintf(&b, "reverse_penn_objs %t\n", c.ReversePennObjs)
	fmt.Fprintf(&b, "ccl_basic_use_both_in_values %t\n", c.CCLBasicUseBothInValues)
	fmt.Fprintf(&b, "count_top_bracket %t\n", c.CountTopBracket)
	fmt.Fprintf(&b, "comment_str %q\n", c.CommentStr)
	fmt.Fprintf(&b, "lex_min_print %d\n", c.LexMinPrint)
	fmt.Fprintf(&b, "trace_bits %#x\n", c.TraceBits)
	return b.String()
}
