// Package table holds the data side of the editable table: the row
// collection, the search and pagination state, the single-row edit session
// and the derivation of the visible page.
//
// Nothing in this package can fail. Deleting a missing row, saving outside an
// edit, or paging past the end all leave the state as it was (or yield an
// empty page) instead of returning an error.
package table
