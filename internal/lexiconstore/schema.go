// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexiconstore

const schemaDDL = `
CREATE TABLE IF NOT EXISTS words (
    surface     TEXT PRIMARY KEY,
    occurrences INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS labels (
    surface    TEXT NOT NULL REFERENCES words(surface),
    side       INTEGER NOT NULL,
    label_key  TEXT NOT NULL,
    label_side INTEGER NOT NULL,
    strength   REAL NOT NULL,
    PRIMARY KEY (surface, side, label_key, label_side)
);

CREATE TABLE IF NOT EXISTS rows (
    surface  TEXT NOT NULL REFERENCES words(surface),
    side     INTEGER NOT NULL,
    adj_pos  INTEGER NOT NULL,
    scalars  BLOB NOT NULL,
    PRIMARY KEY (surface, side, adj_pos)
);

CREATE TABLE IF NOT EXISTS row_labels (
    surface    TEXT NOT NULL,
    side       INTEGER NOT NULL,
    adj_pos    INTEGER NOT NULL,
    label_key  TEXT NOT NULL,
    label_side INTEGER NOT NULL,
    seen       REAL NOT NULL,
    PRIMARY KEY (surface, side, adj_pos, label_key, label_side),
    FOREIGN KEY (surface, side, adj_pos) REFERENCES rows(surface, side, adj_pos)
);
`
