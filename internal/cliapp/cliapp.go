// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package cliapp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/corvidlabs/ccl/cerrs"
	"github.com/corvidlabs/ccl/internal/config"
	"github.com/corvidlabs/ccl/internal/constituent"
	"github.com/corvidlabs/ccl/internal/corpus"
	"github.com/corvidlabs/ccl/internal/evaluator"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/lexiconstore"
	"github.com/corvidlabs/ccl/internal/parser"
	"github.com/corvidlabs/ccl/internal/progress"
	"github.com/corvidlabs/ccl/internal/trace"
)

// app holds the state shared across a single invocation's subcommands:
// the resolved logger (built once in PersistentPreRunE) and the binary's
// declared version.
type app struct {
	version semver.Version
	logger  *slog.Logger
}

// NewRootCommand returns the cclparse command tree under the given Use
// name, so the root binary and cmd/cclparse can both present it (under
// "ccl" and "cclparse" respectively) without duplicating the wiring.
func NewRootCommand(use string, version semver.Version) *cobra.Command {
	a := &app{version: version, logger: slog.Default()}

	root := &cobra.Command{
		Use:           use,
		Short:         "unsupervised incremental CCL parser",
		Long:          `Learn and apply Common Cover Link parses over an unannotated corpus.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging (same as --log-level=debug)")
	root.PersistentFlags().Bool("quiet", false, "only log errors (same as --log-level=error)")
	root.PersistentFlags().String("log-level", "error", "logging level (debug|info|warn|error)")
	root.PersistentFlags().Bool("log-source", false, "add file and line numbers to log messages")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		logLevel, _ := flags.GetString("log-level")
		logSource, _ := flags.GetBool("log-source")
		debug, _ := flags.GetBool("debug")
		quiet, _ := flags.GetBool("quiet")
		if debug && quiet {
			return fmt.Errorf("--debug and --quiet are mutually exclusive")
		}
		var lvl slog.Level
		switch {
		case debug:
			lvl = slog.LevelDebug
		case quiet:
			lvl = slog.LevelError
		default:
			switch strings.ToLower(logLevel) {
			case "debug":
				lvl = slog.LevelDebug
			case "info":
				lvl = slog.LevelInfo
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			default:
				return fmt.Errorf("log-level: unknown value %q", logLevel)
			}
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: logSource || lvl == slog.LevelDebug,
		})
		a.logger = slog.New(handler)
		slog.SetDefault(a.logger)
		return nil
	}

	root.AddCommand(a.cmdParse(), a.cmdLearn(), a.cmdEval(), a.cmdLexicon(), a.cmdVersion())
	return root
}

// commonFlags are shared by parse, learn, and eval: corpus input,
// lexicon persistence, and the config file.
type commonFlags struct {
	configPath   string
	input        string
	inputType    string
	lexPath      string
	createLex    bool
	showProgress bool
	maxWords     int
}

func addCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "G", "", "path to NAME VALUE config file")
	cmd.Flags().StringVar(&f.input, "input", "", "corpus file to read")
	cmd.Flags().StringVar(&f.inputType, "input-type", "plain", "corpus format: plain|ptb|xml")
	cmd.Flags().StringVar(&f.lexPath, "lexicon", "", "path to the persisted lexicon database")
	cmd.Flags().BoolVar(&f.createLex, "create-lexicon", false, "create the lexicon database if it does not exist")
	cmd.Flags().BoolVarP(&f.showProgress, "progress", "R", false, "report progress while processing")
	cmd.Flags().IntVarP(&f.maxWords, "max-words", "c", 0, "stop after this many words (0 = no limit)")
}

func (a *app) cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", a.version.String())
		},
	}
}

// cmdParse runs a full learn+parse pass, printing each utterance's
// constituent tree.
func (a *app) cmdParse() *cobra.Command {
	var f commonFlags
	var outputPath string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "learn from and parse a corpus, printing constituent trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDrive(&f, outputPath, true)
		},
	}
	addCommonFlags(cmd, &f)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write trees to this file instead of stdout")
	return cmd
}

// cmdLearn runs the same driver as parse but only persists the lexicon;
// it does not print constituent trees.
func (a *app) cmdLearn() *cobra.Command {
	var f commonFlags
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "learn from a corpus and persist the lexicon, without printing trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDrive(&f, "", false)
		},
	}
	addCommonFlags(cmd, &f)
	return cmd
}

func (a *app) runDrive(f *commonFlags, outputPath string, printTrees bool) error {
	cfg, err := config.Load(f.configPath, false)
	if err != nil {
		return err
	}

	store, lex, err := a.openLexicon(f, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	data, err := os.ReadFile(f.input)
	if err != nil {
		return err
	}
	reader, err := newCorpusReader(f.inputType, data)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		fd, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer fd.Close()
		out = fd
	}

	var tick *progress.Ticker
	if f.showProgress {
		tick = progress.New(os.Stderr, 2*time.Second)
	}

	sink := trace.NewSlogSink(a.logger, cfg)
	wordCount := 0
	uttWords := 0
	sess := parser.NewSession(cfg, lex).WithTrace(sink)

	feed := func(ev corpus.Event) error {
		if f.maxWords > 0 && wordCount >= f.maxWords {
			return io.EOF
		}
		if ev.Unit != nil {
			wordCount++
			uttWords++
			return sess.Feed(*ev.Unit)
		}
		if err := sess.FeedPunct(*ev.Punct); err != nil {
			return err
		}
		if ev.Punct.Kind == parser.EoUtterance {
			if tick != nil {
				tick.Observe(uttWords)
			}
			uttWords = 0
			if printTrees {
				printTree(out, sess.Export())
			}
			sess = parser.NewSession(cfg, lex).WithTrace(sink)
		}
		return nil
	}

	if err := corpus.Drain(reader, feed); err != nil && err != io.EOF {
		return err
	}
	if tick != nil {
		tick.Final()
	}

	return store.Save(lex)
}

func printTree(w io.Writer, n *constituent.Node) {
	var walk func(n *constituent.Node, depth int)
	walk = func(n *constituent.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsTerminal() {
			fmt.Fprintf(w, "%s%s [%d]\n", indent, n.Word, n.Left)
			return
		}
		fmt.Fprintf(w, "%s(%d,%d)\n", indent, n.Left, n.Right)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(n, 0)
}

// cmdEval parses --input with the persisted lexicon and scores each
// utterance's tree against the matching line of a Penn-Treebank bracketed
// --gold file.
func (a *app) cmdEval() *cobra.Command {
	var f commonFlags
	var goldPath string
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "score parsed trees against a Penn-Treebank gold standard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(&f, goldPath)
		},
	}
	addCommonFlags(cmd, &f)
	cmd.Flags().StringVarP(&goldPath, "gold", "e", "", "Penn-Treebank bracketed gold standard, one tree per line")
	_ = cmd.MarkFlagRequired("gold")
	return cmd
}

func (a *app) runEval(f *commonFlags, goldPath string) error {
	cfg, err := config.Load(f.configPath, false)
	if err != nil {
		return err
	}
	store, lex, err := a.openLexicon(f, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	goldFile, err := os.Open(goldPath)
	if err != nil {
		return err
	}
	defer goldFile.Close()
	goldScanner := bufio.NewScanner(goldFile)

	data, err := os.ReadFile(f.input)
	if err != nil {
		return err
	}
	reader, err := newCorpusReader(f.inputType, data)
	if err != nil {
		return err
	}

	var acc evaluator.Accumulator
	sess := parser.NewSession(cfg, lex)
	feed := func(ev corpus.Event) error {
		if ev.Unit != nil {
			return sess.Feed(*ev.Unit)
		}
		if err := sess.FeedPunct(*ev.Punct); err != nil {
			return err
		}
		if ev.Punct.Kind != parser.EoUtterance {
			return nil
		}
		got := evaluator.Brackets(sess.Export())
		if !goldScanner.Scan() {
			return fmt.Errorf("eval: gold standard has fewer lines than the corpus has utterances")
		}
		tree, _, err := evaluator.ParsePennTree(goldScanner.Text())
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		acc.Add(evaluator.Score(got, evaluator.Brackets(tree)))
		sess = parser.NewSession(cfg, lex)
		return nil
	}
	if err := corpus.Drain(reader, feed); err != nil && err != io.EOF {
		return err
	}

	total := acc.Total()
	fmt.Printf("precision %.4f recall %.4f f1 %.4f crossing %d\n",
		total.Precision, total.Recall, total.F1, total.Crossing)
	return store.Save(lex)
}

// cmdLexicon groups lexicon-management subcommands.
func (a *app) cmdLexicon() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexicon",
		Short: "inspect a persisted lexicon",
	}
	root.AddCommand(a.cmdLexiconDump())
	return root
}

func (a *app) cmdLexiconDump() *cobra.Command {
	var lexPath string
	var minPrint int
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print every entry whose occurrence count meets a threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := lexiconstore.OpenStore(lexPath)
			if err != nil {
				return err
			}
			defer store.Close()
			cfg := config.Default()
			lex, err := store.Load(int(cfg.StatisticsTopListMaxLen), int(cfg.MaxLabels))
			if err != nil {
				return err
			}
			return lex.Dump(os.Stdout, minPrint)
		},
	}
	cmd.Flags().StringVar(&lexPath, "lexicon", "", "path to the persisted lexicon database")
	cmd.Flags().IntVarP(&minPrint, "min-print", "p", 1, "minimum occurrence count to print")
	return cmd
}

func (a *app) openLexicon(f *commonFlags, cfg *config.Config) (*lexiconstore.Store, *lexicon.Lexicon, error) {
	var store *lexiconstore.Store
	var err error
	if _, statErr := os.Stat(f.lexPath); statErr == nil {
		store, err = lexiconstore.OpenStore(f.lexPath)
	} else if f.createLex {
		store, err = lexiconstore.CreateStore(f.lexPath, false)
	} else {
		return nil, nil, fmt.Errorf("lexicon %q does not exist (pass --create-lexicon to create it)", f.lexPath)
	}
	if err != nil {
		return nil, nil, err
	}

	lex, err := store.Load(int(cfg.StatisticsTopListMaxLen), int(cfg.MaxLabels))
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, lex, nil
}

func newCorpusReader(inputType string, data []byte) (corpus.Reader, error) {
	switch strings.ToLower(inputType) {
	case "plain", "":
		return corpus.NewPlainReader(data, nil), nil
	case "ptb":
		return corpus.NewPTBReader(bytes.NewReader(data)), nil
	case "xml":
		return corpus.NewXMLReader(bytes.NewReader(data)), nil
	default:
		return nil, cerrs.ErrUnknownCorpus
	}
}
