// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.conf"), false)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if diff := deep.Equal(cfg, Default()); diff != nil {
		t.Errorf("load: %v", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ccl.conf")
	body := "# sample config\n" +
		"statistics_top_list_max_len 25\n" +
		"use_tags_as_labels true\n" +
		"comment_str ;\n" +
		"printing_mode timing obj_count\n" +
		"trace_bits 0x3\n"
	if err := os.WriteFile(name, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(name, false)
	if err != nil {
		t.Fatalf("load: unexpected error: %v", err)
	}
	if cfg.StatisticsTopListMaxLen != 25 {
		t.Errorf("statistics_top_list_max_len: got %d, want 25", cfg.StatisticsTopListMaxLen)
	}
	if !cfg.UseTagsAsLabels {
		t.Errorf("use_tags_as_labels: got false, want true")
	}
	if cfg.CommentStr != ";" {
		t.Errorf("comment_str: got %q, want %q", cfg.CommentStr, ";")
	}
	if !cfg.PrintingMode[PrintTiming] || !cfg.PrintingMode[PrintObjCount] {
		t.Errorf("printing_mode: got %v, want timing and obj_count set", cfg.PrintingMode)
	}
	if cfg.TraceBits != 0x3 {
		t.Errorf("trace_bits: got %#x, want 0x3", cfg.TraceBits)
	}
}

func TestLoadRejectsUnknownOption(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ccl.conf")
	if err := os.WriteFile(name, []byte("not_a_real_option 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(name, false); err == nil {
		t.Errorf("load: expected error for unknown option, got nil")
	}
}
