package table

import "strings"

// View is the slice of rows visible for the current state.
type View struct {
	Rows     []Row
	Total    int // filtered length, before paging
	Page     int
	PageSize int
}

// Pages returns the number of pages needed for Total rows. An empty result
// still counts as one page.
func (v View) Pages() int {
	if v.PageSize <= 0 || v.Total == 0 {
		return 1
	}
	return (v.Total + v.PageSize - 1) / v.PageSize
}

// Filter returns the rows whose name or email contains search, ignoring case.
// Order is preserved and an empty search matches everything.
func Filter(rows []Row, search string) []Row {
	needle := strings.ToLower(search)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if needle == "" ||
			strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.Email), needle) {
			out = append(out, row)
		}
	}
	return out
}

// Window returns rows[page*size : page*size+size] clamped to the slice bounds.
// Out of range windows are empty.
func Window(rows []Row, page, size int) []Row {
	// Compare against the last page before multiplying so huge pages cannot
	// wrap around.
	if page < 0 || size <= 0 || len(rows) == 0 || page > (len(rows)-1)/size {
		return []Row{}
	}
	start := page * size
	end := len(rows)
	if size < end-start {
		end = start + size
	}
	out := make([]Row, end-start)
	copy(out, rows[start:end])
	return out
}

// Derive filters rows by search and cuts out the requested page.
func Derive(rows []Row, search string, page, size int) View {
	filtered := Filter(rows, search)
	return View{
		Rows:     Window(filtered, page, size),
		Total:    len(filtered),
		Page:     page,
		PageSize: size,
	}
}

type viewKey struct {
	revision uint64
	search   string
	page     int
	size     int
}

type viewMemo struct {
	key   viewKey
	view  View
	valid bool
}

func (m *viewMemo) get(key viewKey, compute func() View) View {
	if m.valid && m.key == key {
		return m.view
	}
	m.key = key
	m.view = compute()
	m.valid = true
	return m.view
}
