package pagination

import "github.com/udongsi/udongsi-backend/pkg/types"

const (
	// DefaultPage is used when a page is not provided or invalid.
	DefaultPage = 1
	// DefaultSize is the standard page size.
	DefaultSize = 10
	// MaxSize caps how many rows a single page can request.
	MaxSize = 100
)

// Params holds offset pagination inputs from controllers.
type Params struct {
	Page int
	Size int
}

// Normalize clamps page and size to their allowed ranges.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Size
}

// Meta assembles the response metadata for a total row count.
func (p Params) Meta(total int64) types.PageMeta {
	n := p.Normalize()
	pages := int(total) / n.Size
	if int(total)%n.Size != 0 {
		pages++
	}
	return types.PageMeta{
		Page:  n.Page,
		Size:  n.Size,
		Total: total,
		Pages: pages,
	}
}
