// Package pipeline reads batches of titles and resolves them concurrently.
package pipeline

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// Item is one title/reading pair queued for alignment.
type Item struct {
	ID      string `json:"id"`
	Line    int    `json:"line,omitempty"`
	Title   string `json:"title"`
	Reading string `json:"reading"`
}

// generateID creates a short random hex id. Falls back to a timestamp string on error.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// NewItem builds an Item with a fresh ID.
func NewItem(title, reading string) Item {
	return Item{ID: generateID(), Title: title, Reading: reading}
}

// ReadTSV parses one "title<TAB>reading" pair per line. Blank lines and lines
// starting with # are skipped; a line without a tab is a title with no reading.
// Titles keep their surrounding spaces, only the line ending is removed.
func ReadTSV(r io.Reader) ([]Item, error) {
	var items []Item
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		title, reading, _ := strings.Cut(line, "\t")
		it := NewItem(title, strings.TrimSpace(reading))
		it.Line = n
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: read line %d: %w", n+1, err)
	}
	return items, nil
}
