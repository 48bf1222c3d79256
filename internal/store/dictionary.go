package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// SQLDictionary is a words.Source backed by the words table.
type SQLDictionary struct {
	db *sql.DB
}

// NewSQLDictionary wraps an opened, migrated database.
func NewSQLDictionary(db *sql.DB) *SQLDictionary { return &SQLDictionary{db: db} }

var _ words.Source = (*SQLDictionary)(nil)

// Load returns the stored words in import order.
func (d *SQLDictionary) Load(ctx context.Context) ([]solver.Word, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT word FROM words ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []solver.Word
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		w, err := solver.ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("stored word: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, words.ErrEmpty
	}
	return out, nil
}

// Replace swaps the stored dictionary for list in a single transaction and
// records where it came from.
func (d *SQLDictionary) Replace(ctx context.Context, source string, list []solver.Word) error {
	if len(list) == 0 {
		return words.ErrEmpty
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (position, word) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, w := range list {
		if _, err := stmt.ExecContext(ctx, i, string(w)); err != nil {
			return fmt.Errorf("insert %s: %w", w, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO dictionary_meta (id, source, word_count, imported_at)
        VALUES (1, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            source=excluded.source,
            word_count=excluded.word_count,
            imported_at=excluded.imported_at`,
		source, len(list), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record dictionary meta: %w", err)
	}
	return tx.Commit()
}

// Meta describes the stored dictionary.
type Meta struct {
	Source     string    `json:"source"`
	WordCount  int       `json:"wordCount"`
	ImportedAt time.Time `json:"importedAt"`
}

// Meta returns the last import's metadata, or ErrNotFound before any import.
func (d *SQLDictionary) Meta(ctx context.Context) (Meta, error) {
	var m Meta
	var imported string
	err := d.db.QueryRowContext(ctx,
		`SELECT source, word_count, imported_at FROM dictionary_meta WHERE id=1`,
	).Scan(&m.Source, &m.WordCount, &imported)
	if err == sql.ErrNoRows {
		return Meta{}, ErrNotFound
	}
	if err != nil {
		return Meta{}, err
	}
	if m.ImportedAt, err = time.Parse(time.RFC3339, imported); err != nil {
		return Meta{}, fmt.Errorf("dictionary_meta.imported_at: %w", err)
	}
	return m, nil
}

// ReadMeta opens dbPath and returns its dictionary metadata.
func ReadMeta(ctx context.Context, dbPath string) (Meta, error) {
	db, err := Open(dbPath)
	if err != nil {
		return Meta{}, fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()
	return NewSQLDictionary(db).Meta(ctx)
}

// LoadDictionary resolves the dictionary used by both binaries.
//
//   - dbPath set: the SQLite words table; when it is still empty it is seeded
//     from wordsFile (or the embedded list) first.
//   - otherwise: wordsFile, or the embedded list when wordsFile is empty.
//
// The returned string describes the source for logs and /debug/words.
func LoadDictionary(ctx context.Context, dbPath, wordsFile string) ([]solver.Word, string, error) {
	fallback := words.Resolve(wordsFile)
	source := wordsFile
	if source == "" {
		source = "embedded"
	}
	if dbPath == "" {
		list, err := fallback.Load(ctx)
		return list, source, err
	}

	db, err := Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer db.Close()

	dict := NewSQLDictionary(db)
	list, err := dict.Load(ctx)
	if errors.Is(err, words.ErrEmpty) {
		seed, serr := fallback.Load(ctx)
		if serr != nil {
			return nil, "", serr
		}
		if serr := dict.Replace(ctx, source, seed); serr != nil {
			return nil, "", fmt.Errorf("seed %s: %w", dbPath, serr)
		}
		log.Info().Str("db", dbPath).Str("from", source).Int("words", len(seed)).Msg("seeded dictionary")
		return seed, "sqlite:" + dbPath, nil
	}
	if err != nil {
		return nil, "", err
	}
	return list, "sqlite:" + dbPath, nil
}
