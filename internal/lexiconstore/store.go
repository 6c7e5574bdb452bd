// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexiconstore

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	_ "modernc.org/sqlite"

	"github.com/corvidlabs/ccl/cerrs"
	"github.com/corvidlabs/ccl/internal/ccltypes"
	"github.com/corvidlabs/ccl/internal/lexicon"
	"github.com/corvidlabs/ccl/internal/stats"
)

// Store is a sqlite-backed lexicon persistence layer: a thin wrapper
// around *sql.DB.
type Store struct {
	db *sql.DB
}

// CreateStore creates a new lexicon database at path. It is an error for
// the file to already exist unless force is true.
func CreateStore(path string, force bool) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return nil, cerrs.ErrDatabaseExists
		}
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexiconstore: create schema: %w", err)
	}
	slog.Info("lexiconstore: created", "path", path)
	return &Store{db: db}, nil
}

// OpenStore opens an existing lexicon database at path.
func OpenStore(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("lexiconstore: ensure schema: %w", err)
	}
	slog.Info("lexiconstore: opened", "path", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save writes every interned word in lex to the database, replacing any
// prior contents for that surface form.
func (s *Store) Save(lex *lexicon.Lexicon) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, word := range lex.Words() {
		entry, ok := lex.Lookup(word)
		if !ok {
			continue
		}
		if err := s.saveEntry(tx, entry); err != nil {
			return fmt.Errorf("lexiconstore: save %q: %w", word, err)
		}
	}
	return tx.Commit()
}

func (s *Store) saveEntry(tx *sql.Tx, e *lexicon.Entry) error {
	if _, err := tx.Exec(`DELETE FROM row_labels WHERE surface = ?`, e.Surface); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM rows WHERE surface = ?`, e.Surface); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM labels WHERE surface = ?`, e.Surface); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		INSERT INTO words (surface, occurrences) VALUES (?, ?)
		ON CONFLICT(surface) DO UPDATE SET occurrences = excluded.occurrences`,
		e.Surface, e.Occurrences); err != nil {
		return err
	}

	for _, side := range []ccltypes.Side{ccltypes.LEFT, ccltypes.RIGHT} {
		for _, le := range e.Labels.Entries(side) {
			if _, err := tx.Exec(`
				INSERT INTO labels (surface, side, label_key, label_side, strength)
				VALUES (?, ?, ?, ?, ?)`,
				e.Surface, int(side), le.Label.Key, int(le.Label.Side), le.Strength); err != nil {
				return err
			}
		}
		for _, adjPos := range e.AdjacencyPositions(side) {
			row, ok := e.PeekRow(side, adjPos)
			if !ok {
				continue
			}
			if err := saveRow(tx, e.Surface, side, adjPos, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveRow(tx *sql.Tx, surface string, side ccltypes.Side, adjPos int, row *stats.Row) error {
	blob := encodeScalars(row.Scalars())
	if _, err := tx.Exec(`
		INSERT INTO rows (surface, side, adj_pos, scalars) VALUES (?, ?, ?, ?)`,
		surface, int(side), adjPos, blob); err != nil {
		return err
	}
	for _, le := range row.IterTop() {
		if _, err := tx.Exec(`
			INSERT INTO row_labels (surface, side, adj_pos, label_key, label_side, seen)
			VALUES (?, ?, ?, ?, ?, ?)`,
			surface, int(side), adjPos, le.Label.Key, int(le.Label.Side), le.Seen); err != nil {
			return err
		}
	}
	return nil
}

// FlushRow implements lexicon.FlushSink, persisting a stat row evicted
// from an entry's in-memory adjacency cache rather than losing it.
func (s *Store) FlushRow(surface string, side ccltypes.Side, adjPos int, row *stats.Row) {
	tx, err := s.db.Begin()
	if err != nil {
		slog.Warn("lexiconstore: flush begin failed", "surface", surface, "err", err)
		return
	}
	if err := saveRow(tx, surface, side, adjPos, row); err != nil {
		tx.Rollback()
		slog.Warn("lexiconstore: flush row failed", "surface", surface, "err", err)
		return
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("lexiconstore: flush commit failed", "surface", surface, "err", err)
	}
}

// Load rebuilds a Lexicon from the database, installing s as the new
// lexicon's flush sink so later evictions keep persisting.
func (s *Store) Load(topKMaxLen, labelMaxLen int, opts ...lexicon.Option) (*lexicon.Lexicon, error) {
	opts = append(opts, lexicon.WithFlushSink(s))
	lex := lexicon.New(topKMaxLen, labelMaxLen, opts...)

	wordRows, err := s.db.Query(`SELECT surface, occurrences FROM words`)
	if err != nil {
		return nil, err
	}
	defer wordRows.Close()
	for wordRows.Next() {
		var surface string
		var occ int
		if err := wordRows.Scan(&surface, &occ); err != nil {
			return nil, err
		}
		e := lex.GetOrCreate(surface)
		e.Occurrences = occ
	}
	if err := wordRows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadLabels(lex); err != nil {
		return nil, err
	}
	if err := s.loadRows(lex); err != nil {
		return nil, err
	}
	return lex, nil
}

func (s *Store) loadLabels(lex *lexicon.Lexicon) error {
	rows, err := s.db.Query(`SELECT surface, side, label_key, label_side, strength FROM labels`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var surface string
		var side, labelSide int
		var labelKey string
		var strength float64
		if err := rows.Scan(&surface, &side, &labelKey, &labelSide, &strength); err != nil {
			return err
		}
		e, ok := lex.Lookup(surface)
		if !ok {
			continue
		}
		label := ccltypes.Label{Key: labelKey, Side: ccltypes.Side(labelSide)}
		e.Labels.Insert(ccltypes.Side(side), label, strength)
	}
	return rows.Err()
}

func (s *Store) loadRows(lex *lexicon.Lexicon) error {
	rows, err := s.db.Query(`SELECT surface, side, adj_pos, scalars FROM rows`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type key struct {
		surface string
		side    ccltypes.Side
		adjPos  int
	}
	var pending []key
	for rows.Next() {
		var surface string
		var side, adjPos int
		var blob []byte
		if err := rows.Scan(&surface, &side, &adjPos, &blob); err != nil {
			return err
		}
		e, ok := lex.Lookup(surface)
		if !ok {
			continue
		}
		row := e.Row(ccltypes.Side(side), adjPos)
		row.SetScalars(decodeScalars(blob))
		pending = append(pending, key{surface, ccltypes.Side(side), adjPos})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	labelRows, err := s.db.Query(`SELECT surface, side, adj_pos, label_key, label_side, seen FROM row_labels`)
	if err != nil {
		return err
	}
	defer labelRows.Close()
	for labelRows.Next() {
		var surface string
		var side, adjPos, labelSide int
		var labelKey string
		var seen float64
		if err := labelRows.Scan(&surface, &side, &adjPos, &labelKey, &labelSide, &seen); err != nil {
			return err
		}
		e, ok := lex.Lookup(surface)
		if !ok {
			continue
		}
		row := e.Row(ccltypes.Side(side), adjPos)
		row.IncrementLabel(ccltypes.Label{Key: labelKey, Side: ccltypes.Side(labelSide)}, seen)
	}
	return labelRows.Err()
}

// numScalars mirrors stats.Row's scalar vector width: 2 ValueTypes (Base,
// Derived) times 4 Properties (Learn, Block, In, Out).
const numScalars = 8

func encodeScalars(v [numScalars]float64) []byte {
	buf := make([]byte, numScalars*8)
	for i, f := range v {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeScalars(buf []byte) [numScalars]float64 {
	var v [numScalars]float64
	for i := range v {
		if (i+1)*8 > len(buf) {
			break
		}
		v[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*8:]))
	}
	return v
}
