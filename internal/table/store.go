package table

// Store owns the table state: rows, search text, pagination, edit session and
// theme flag. Every mutator is total; inputs that make no sense are ignored
// rather than reported. A Store is not safe for concurrent use.
type Store struct {
	rows     []Row
	revision uint64

	search   string
	page     int
	pageSize int
	dark     bool

	editing bool
	target  int
	buffer  Row

	memo viewMemo
}

// NewStore creates a store holding a copy of rows, on the first page with the
// default page size.
func NewStore(rows []Row) *Store {
	s := &Store{pageSize: DefaultPageSize}
	s.rows = append(make([]Row, 0, len(rows)), rows...)
	return s
}

// Rows returns a copy of the row collection in display order.
func (s *Store) Rows() []Row {
	return append(make([]Row, 0, len(s.rows)), s.rows...)
}

// Len returns the size of the unfiltered collection.
func (s *Store) Len() int {
	return len(s.rows)
}

// Search returns the current search text.
func (s *Store) Search() string {
	return s.search
}

// SetSearch replaces the search text. The page index is left untouched, so a
// narrower filter can leave the current page past the end of the results.
func (s *Store) SetSearch(text string) {
	s.search = text
}

// Page returns the zero-based page index.
func (s *Store) Page() int {
	return s.page
}

// SetPage moves to page. Negative indexes are ignored.
func (s *Store) SetPage(page int) {
	if page < 0 {
		return
	}
	s.page = page
}

// PageSize returns the number of rows per page.
func (s *Store) PageSize() int {
	return s.pageSize
}

// SetPageSize changes the page size and returns to the first page.
// Non-positive sizes are ignored.
func (s *Store) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	s.pageSize = size
	s.page = 0
}

// Dark reports whether the dark theme is selected.
func (s *Store) Dark() bool {
	return s.dark
}

// SetDark sets the theme flag.
func (s *Store) SetDark(dark bool) {
	s.dark = dark
}

// ToggleDark flips the theme flag.
func (s *Store) ToggleDark() {
	s.dark = !s.dark
}

// View returns the filtered, paged rows for the current state. Results are
// reused until rows, search text or pagination change.
func (s *Store) View() View {
	key := viewKey{revision: s.revision, search: s.search, page: s.page, size: s.pageSize}
	v := s.memo.get(key, func() View {
		return Derive(s.rows, s.search, s.page, s.pageSize)
	})
	v.Rows = append(make([]Row, 0, len(v.Rows)), v.Rows...)
	return v
}

func (s *Store) index(id int) int {
	for i, row := range s.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Row looks up a row by id.
func (s *Store) Row(id int) (Row, bool) {
	i := s.index(id)
	if i < 0 {
		return Row{}, false
	}
	return s.rows[i], true
}

func (s *Store) touch() {
	s.revision++
}
