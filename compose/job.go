package compose

import "github.com/sheetpress/sheetpress/pages"

// Metadata carries the project fields shown in a title block. The compositor
// accepts it with every job but does not render it onto output pages; it is
// consumed by the template generator only.
type Metadata struct {
	Project string `yaml:"project" json:"project"`
	Client  string `yaml:"client" json:"client"`
	Date    string `yaml:"date" json:"date"`
	DrawnBy string `yaml:"drawn_by" json:"drawn_by"`
}

// Job describes one composition run: a source document whose pages are
// scaled into the sheet's safe zone, a title-block template overlaid on top,
// and the path the result is written to.
type Job struct {
	InputPath    string
	TemplatePath string
	OutputPath   string
	Exclude      pages.Set
	Metadata     Metadata
}

// Result reports what a composition run produced. PagesWritten == 0 means
// every page was excluded (or the document was empty) and no output file was
// created; that is a no-op, not a failure.
type Result struct {
	PagesWritten int
	PagesSkipped int
	OutputPath   string // empty when no file was written
}
