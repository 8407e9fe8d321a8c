package notegraph

// Block is one node in a parsed block tree. It corresponds to one
// independently addressable unit in the outline model of the target
// note-graph: every line of content becomes a block that can own child
// blocks.
type Block struct {
	// Content is the display text after marker stripping or rewriting.
	// The parser never emits a block with empty content.
	Content string

	// Children holds nested blocks in document order.
	Children []*Block

	// Properties holds attached metadata. The parser leaves this empty;
	// it exists for callers that decorate blocks before insertion.
	Properties map[string]any

	// Level is the heading depth (1-6) for heading blocks and the
	// indentation depth (0-based) for list blocks. It guides tree
	// construction and is not part of the wire format.
	Level int
}

// Batch converts the block and its subtree into the batch-insert wire
// shape, depth first.
func (b *Block) Batch() *BatchBlock {
	out := &BatchBlock{Content: b.Content}

	if len(b.Children) > 0 {
		out.Children = make([]*BatchBlock, 0, len(b.Children))
		for _, child := range b.Children {
			out.Children = append(out.Children, child.Batch())
		}
	}

	if len(b.Properties) > 0 {
		out.Properties = b.Properties
	}

	return out
}

// BatchBlock is the nested-record wire shape consumed by the note-graph
// batch-insert API. Children and Properties are omitted entirely when
// empty so the receiving system is not over-specified with empty
// containers.
type BatchBlock struct {
	Content    string         `json:"content"`
	Children   []*BatchBlock  `json:"children,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// ParsedDoc is the result of parsing one markdown document.
type ParsedDoc struct {
	// Properties holds frontmatter key/values only. Explicit properties
	// supplied by a caller are merged by the caller, never here.
	Properties map[string]any

	// Blocks holds the root-level blocks in first-appearance order.
	Blocks []*Block
}

// Batch converts all root blocks into the batch-insert wire shape.
func (d *ParsedDoc) Batch() []*BatchBlock {
	out := make([]*BatchBlock, 0, len(d.Blocks))
	for _, block := range d.Blocks {
		out = append(out, block.Batch())
	}
	return out
}
