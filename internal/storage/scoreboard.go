package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Entry is one line of a scoreboard file.
type Entry struct {
	Name  string
	Value int
}

// ReadScoreboard parses "name;value" lines. Lines that do not have exactly two
// fields or whose value is not an integer are skipped. The result is sorted by
// value, highest first; equal values keep file order.
func ReadScoreboard(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(strings.TrimRight(sc.Text(), "\r"), ";")
		if len(fields) != 2 {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: fields[0], Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scoreboard: %w", err)
	}

	SortEntries(entries)
	return entries, nil
}

// WriteScoreboard writes one "name;value" line per entry. Separators and line
// breaks inside names are replaced so every line reads back.
func WriteScoreboard(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s;%d\n", cleanName(e.Name), e.Value); err != nil {
			return fmt.Errorf("storage: cannot write scoreboard: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("storage: cannot write scoreboard: %w", err)
	}
	return nil
}

var nameReplacer = strings.NewReplacer(";", "_", "\n", " ", "\r", " ")

func cleanName(name string) string {
	return nameReplacer.Replace(name)
}

// LoadScoreboard reads a scoreboard file. A missing file is an empty board.
func LoadScoreboard(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open scoreboard %s: %w", path, err)
	}
	defer f.Close()

	return ReadScoreboard(f)
}

// SaveScoreboard replaces the file at path. The new content is written to a
// temporary file in the same directory first, so a failed write leaves the
// old scoreboard intact.
func SaveScoreboard(path string, entries []Entry) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".scoreboard-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create scoreboard: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := WriteScoreboard(tmp, entries); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scoreboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace scoreboard %s: %w", path, err)
	}
	return nil
}

// SortEntries orders entries by value, highest first, keeping the order of
// equal values.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
}

// EntriesFromScores converts stored scores to scoreboard entries.
func EntriesFromScores(scores []ScoreEntry) []Entry {
	entries := make([]Entry, len(scores))
	for i, s := range scores {
		entries[i] = Entry{Name: s.Player, Value: s.Score}
	}
	return entries
}
