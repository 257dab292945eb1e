package config

import (
	"github.com/alexisbeaulieu97/datatable/internal/table"
)

// Seed is the optional YAML document a table can be started from. It only
// shapes the initial state; nothing is written back to it.
type Seed struct {
	PageSize int       `yaml:"page_size,omitempty" json:"page_size,omitempty" validate:"omitempty,page_size" jsonschema:"enum=5,enum=10,enum=20,description=Initial rows per page"`
	DarkMode bool      `yaml:"dark_mode,omitempty" json:"dark_mode,omitempty" jsonschema:"description=Start with the dark theme"`
	Rows     []SeedRow `yaml:"rows" json:"rows,omitempty" validate:"omitempty,dive" jsonschema:"description=Initial rows; omitted means the built-in sample rows"`
}

// SeedRow is one row of a Seed.
type SeedRow struct {
	ID    int    `yaml:"id" json:"id" validate:"gte=0" jsonschema:"required,minimum=0"`
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// DefaultSeed returns the seed used when no file is given.
func DefaultSeed() *Seed {
	rows := table.SeedRows()
	seed := &Seed{PageSize: table.DefaultPageSize, Rows: make([]SeedRow, 0, len(rows))}
	for _, row := range rows {
		seed.Rows = append(seed.Rows, SeedRow(row))
	}
	return seed
}

// TableRows converts the seed rows into table rows.
func (s *Seed) TableRows() []table.Row {
	if s == nil {
		return table.SeedRows()
	}
	rows := make([]table.Row, 0, len(s.Rows))
	for _, row := range s.Rows {
		rows = append(rows, table.Row(row))
	}
	return rows
}

// NewStore builds a table store initialised from the seed.
func (s *Seed) NewStore() *table.Store {
	store := table.NewStore(s.TableRows())
	if s == nil {
		return store
	}
	if s.PageSize > 0 {
		store.SetPageSize(s.PageSize)
	}
	store.SetDark(s.DarkMode)
	return store
}

func (s *Seed) applyDefaults() {
	if s.PageSize == 0 {
		s.PageSize = table.DefaultPageSize
	}
	if s.Rows == nil {
		s.Rows = DefaultSeed().Rows
	}
}
