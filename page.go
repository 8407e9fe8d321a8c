package notegraph

import "context"

// Page represents a page entity in the note graph.
type Page struct {
	UUID         string         `json:"uuid"`
	Name         string         `json:"name"`
	OriginalName string         `json:"originalName"`
	Journal      bool           `json:"journal?"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// DisplayName returns the page's original (cased) name, falling back to
// its normalized name.
func (p *Page) DisplayName() string {
	if p.OriginalName != "" {
		return p.OriginalName
	}
	return p.Name
}

// RemoteBlock is a block entity as returned by the note-graph API. Unlike
// BatchBlock it carries the identifier assigned by the graph.
type RemoteBlock struct {
	UUID       string         `json:"uuid"`
	Content    string         `json:"content"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []*RemoteBlock `json:"children,omitempty"`
}

// PageContent bundles a page entity with its full block tree. Page
// properties live on the first block in the note graph's outline model;
// the client copies them onto the page for convenience.
type PageContent struct {
	Page   *Page          `json:"page"`
	Blocks []*RemoteBlock `json:"blocks"`
}

// UpdateMode selects how UpdatePage treats existing content.
type UpdateMode string

// Update modes.
const (
	// UpdateAppend adds new blocks after existing content.
	UpdateAppend UpdateMode = "append"
	// UpdateReplace clears existing blocks before inserting new ones.
	UpdateReplace UpdateMode = "replace"
)

// Validate returns an error for unrecognized modes.
func (m UpdateMode) Validate() error {
	switch m {
	case UpdateAppend, UpdateReplace:
		return nil
	}
	return Errorf(EINVALID, "invalid update mode %q", string(m))
}

// UpdateResult summarizes what an UpdatePage call changed.
type UpdateResult struct {
	Page          string     `json:"page"`
	Mode          UpdateMode `json:"mode"`
	Cleared       bool       `json:"cleared"`
	BlocksAdded   int        `json:"blocksAdded"`
	PropertiesSet int        `json:"propertiesSet"`
}

// SearchOptions narrows a Search call.
type SearchOptions struct {
	Limit int `json:"limit"`
}

// SearchBlock is one block hit in a search result.
type SearchBlock struct {
	Content string `json:"block/content"`
}

// SearchSnippet is one page-content snippet in a search result.
type SearchSnippet struct {
	Snippet string `json:"block/snippet"`
}

// SearchResult is the note-graph API's search response.
type SearchResult struct {
	Blocks       []SearchBlock   `json:"blocks"`
	PageContents []SearchSnippet `json:"pages-content"`
	Pages        []string        `json:"pages"`
	Files        []string        `json:"files"`
	HasMore      bool            `json:"has-more?"`
}

// PageService represents a service for manipulating pages in the note
// graph.
type PageService interface {
	// CreatePage creates a new page populated with the given block tree.
	// Properties are set on the page's first block after insertion.
	CreatePage(ctx context.Context, title string, blocks []*BatchBlock, properties map[string]any) (*Page, error)

	// UpdatePage adds blocks and properties to an existing page.
	// Returns ENOTFOUND if the page does not exist.
	UpdatePage(ctx context.Context, name string, blocks []*BatchBlock, properties map[string]any, mode UpdateMode) (*UpdateResult, error)

	// ListPages lists all pages in the graph.
	ListPages(ctx context.Context) ([]*Page, error)

	// GetPage retrieves a page and its block tree.
	// Returns ENOTFOUND if the page does not exist.
	GetPage(ctx context.Context, name string) (*PageContent, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, name string) error

	// Search queries pages, blocks, and files across the graph.
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error)
}
