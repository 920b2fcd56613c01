package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Service types derived from a provider's category. The type is computed on
// read and never stored on the record.
const (
	TypeSkilled   = "skilled"
	TypeUnskilled = "unskilled"
	TypeOther     = "other"
)

// Table maps a service category to skilled or unskilled. Categories absent
// from the table classify as other.
type Table struct {
	skilled   map[string]struct{}
	unskilled map[string]struct{}
}

var defaultSkilled = []string{
	"Carpenter",
	"Electrician",
	"Fabricator",
	"Painter",
	"Plumber",
	"Solar Panel Technicians",
	"Welder",
}

var defaultUnskilled = []string{
	"Aya (Baby Caretaker)",
	"Gardener",
	"Guard",
	"Helper",
	"Sweeper",
}

// Default returns the built-in classification table.
func Default() *Table {
	return NewTable(defaultSkilled, defaultUnskilled)
}

// NewTable builds a table from explicit category lists.
func NewTable(skilled, unskilled []string) *Table {
	t := &Table{
		skilled:   make(map[string]struct{}, len(skilled)),
		unskilled: make(map[string]struct{}, len(unskilled)),
	}
	for _, c := range skilled {
		t.skilled[normalize(c)] = struct{}{}
	}
	for _, c := range unskilled {
		t.unskilled[normalize(c)] = struct{}{}
	}
	return t
}

type tableFile struct {
	Skilled   []string `json:"skilled"`
	Unskilled []string `json:"unskilled"`
}

// LoadFile reads a classification table from a JSON file with "skilled" and
// "unskilled" arrays. An empty path yields the default table.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category table: %w", err)
	}

	var tf tableFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse category table: %w", err)
	}

	return NewTable(tf.Skilled, tf.Unskilled), nil
}

// Classify returns the service type for a category.
func (t *Table) Classify(category string) string {
	key := normalize(category)
	if _, ok := t.unskilled[key]; ok {
		return TypeUnskilled
	}
	if _, ok := t.skilled[key]; ok {
		return TypeSkilled
	}
	return TypeOther
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
