// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Define the Source contract every dictionary backend satisfies.
//   - Parse newline-delimited word lists into validated solver.Words.
//   - Provide file-backed and embedded sources.
//
// List format:
//   - One word per line, case-insensitive, surrounding whitespace trimmed.
//   - Blank lines and lines starting with "#" are skipped.
//   - Entries that are not exactly 5 letters A–Z are rejected with a warning.
//   - Duplicates are dropped; the first occurrence keeps its position.
//
// The SQLite-backed source lives in internal/store.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrEmpty is returned when a source yields no valid words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Source loads a dictionary.
type Source interface {
	Load(ctx context.Context) ([]solver.Word, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]solver.Word, error)

func (f SourceFunc) Load(ctx context.Context) ([]solver.Word, error) { return f(ctx) }

// Parse reads one word per line from r.
func Parse(r io.Reader) ([]solver.Word, error) {
	var out []solver.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := solver.ParseWord(s)
		if err != nil {
			log.Warn().Int("line", line).Str("entry", s).Msg("skipping invalid dictionary entry")
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(out), nil
}

// FileSource reads a newline-delimited word list from Path.
type FileSource struct {
	Path string
}

// Load implements Source.
func (f FileSource) Load(ctx context.Context) ([]solver.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	list, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", f.Path, ErrEmpty)
	}
	return list, nil
}

var (
	embeddedOnce sync.Once
	embedded     []solver.Word
	embeddedErr  error
)

// Embedded returns the built-in dictionary source. The list is parsed once;
// each Load returns a fresh copy.
func Embedded() Source {
	return SourceFunc(func(ctx context.Context) ([]solver.Word, error) {
		embeddedOnce.Do(func() {
			f, err := assets.Words()
			if err != nil {
				embeddedErr = err
				return
			}
			defer f.Close()
			embedded, embeddedErr = Parse(f)
			if embeddedErr == nil && len(embedded) == 0 {
				embeddedErr = ErrEmpty
			}
		})
		if embeddedErr != nil {
			return nil, embeddedErr
		}
		return append([]solver.Word(nil), embedded...), nil
	})
}

// Resolve returns a FileSource for path, or the embedded source when path is empty.
func Resolve(path string) Source {
	if path == "" {
		return Embedded()
	}
	return FileSource{Path: path}
}
