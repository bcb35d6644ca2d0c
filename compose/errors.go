package compose

import "fmt"

// NotFoundError reports that an input or template path does not resolve to a
// document on disk.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.Path)
}

// PageIndexError reports a requested page index outside the source document.
type PageIndexError struct {
	Index     int
	PageCount int
}

func (e *PageIndexError) Error() string {
	return fmt.Sprintf("page %d does not exist, document has %d page(s)", e.Index, e.PageCount)
}
