package table

import "strconv"

// Field names addressable on a Row.
const (
	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	ColumnAction = "action"
)

// Row is a single record in the table, uniquely identified by ID.
type Row struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// Field returns the display value of the named field. The synthetic action
// column and unknown names yield an empty string.
func (r Row) Field(name string) string {
	switch name {
	case FieldID:
		return strconv.Itoa(r.ID)
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	default:
		return ""
	}
}

// Column describes one rendered column. MinWidth is in pixels; terminal
// renderers scale it down.
type Column struct {
	ID          string
	DisplayName string
	MinWidth    int
}

// Synthetic reports whether the column has no backing row field.
func (c Column) Synthetic() bool {
	return c.ID == ColumnAction
}

var columns = []Column{
	{ID: FieldID, DisplayName: "ID", MinWidth: 100},
	{ID: FieldName, DisplayName: "Name", MinWidth: 150},
	{ID: FieldEmail, DisplayName: "Email", MinWidth: 200},
	{ID: ColumnAction, DisplayName: "Action", MinWidth: 150},
}

// Columns returns the fixed column layout.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// SeedRows returns the rows a new table starts with.
func SeedRows() []Row {
	return []Row{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
}

// PageSizes lists the page sizes offered by the pagination selector.
var PageSizes = []int{5, 10, 20}

// DefaultPageSize is the page size of a freshly created store.
const DefaultPageSize = 10

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// NextPageSize returns the selector entry after n, wrapping around. Sizes not
// in PageSizes restart the cycle.
func NextPageSize(n int) int {
	for i, size := range PageSizes {
		if size == n {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}
