package logseq

import (
	"context"
	"sort"

	"github.com/notegraph/notegraph"
)

// Ensure Client implements notegraph.PageService at compile time.
var _ notegraph.PageService = (*Client)(nil)

// CreatePage creates a page and populates it with a block tree. Logseq
// auto-creates an empty first block on page creation; the new blocks are
// inserted as its siblings and the empty anchor removed afterwards, so
// the page starts exactly with the given tree. Page properties are set
// last, on whatever block ends up first.
func (c *Client) CreatePage(ctx context.Context, title string, blocks []*notegraph.BatchBlock, properties map[string]any) (*notegraph.Page, error) {
	if title == "" {
		return nil, notegraph.Errorf(notegraph.EINVALID, "Page title is required.")
	}

	page, err := c.createPage(ctx, title)
	if err != nil {
		return nil, err
	}

	if len(blocks) > 0 {
		roots, err := c.getPageBlocksTree(ctx, title)
		if err != nil {
			return nil, err
		}
		if len(roots) > 0 && roots[0].UUID != "" {
			anchor := roots[0].UUID
			if err := c.insertBatchBlock(ctx, anchor, blocks, true); err != nil {
				return nil, err
			}
			if err := c.removeBlock(ctx, anchor); err != nil {
				return nil, err
			}
		} else {
			// No auto-created first block to anchor on, so build the
			// tree by appending roots and batching their children.
			if err := c.appendBlocks(ctx, title, blocks); err != nil {
				return nil, err
			}
		}
	}

	if len(properties) > 0 {
		if err := c.setPageProperties(ctx, title, properties); err != nil {
			return nil, err
		}
	}

	return page, nil
}

// UpdatePage adds blocks to an existing page. In append mode the blocks
// go after the current content and properties merge over existing ones;
// in replace mode the page is cleared first and properties replace the
// old set.
func (c *Client) UpdatePage(ctx context.Context, name string, blocks []*notegraph.BatchBlock, properties map[string]any, mode notegraph.UpdateMode) (*notegraph.UpdateResult, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if err := c.requirePage(ctx, name); err != nil {
		return nil, err
	}

	result := &notegraph.UpdateResult{Page: name, Mode: mode}

	if mode == notegraph.UpdateReplace {
		roots, err := c.getPageBlocksTree(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, root := range roots {
			if root.UUID == "" {
				continue
			}
			if err := c.removeBlock(ctx, root.UUID); err != nil {
				return nil, err
			}
		}
		result.Cleared = true
	}

	if len(blocks) > 0 {
		roots, err := c.getPageBlocksTree(ctx, name)
		if err != nil {
			return nil, err
		}

		if len(roots) > 0 && roots[len(roots)-1].UUID != "" {
			anchor := roots[len(roots)-1].UUID
			if err := c.insertBatchBlock(ctx, anchor, blocks, true); err != nil {
				return nil, err
			}
		} else if err := c.appendBlocks(ctx, name, blocks); err != nil {
			return nil, err
		}
		result.BlocksAdded = len(blocks)
	}

	if len(properties) > 0 {
		props := properties
		if mode == notegraph.UpdateAppend {
			current, err := c.pageProperties(ctx, name)
			if err != nil {
				return nil, err
			}
			props = notegraph.MergeProperties(current, properties)
		}
		if err := c.setPageProperties(ctx, name, props); err != nil {
			return nil, err
		}
		result.PropertiesSet = len(props)
	}

	return result, nil
}

// ListPages returns every page in the graph.
func (c *Client) ListPages(ctx context.Context) ([]*notegraph.Page, error) {
	return c.getAllPages(ctx)
}

// GetPage returns a page's metadata and full block tree. Page
// properties live on the first block in Logseq, so they are lifted from
// there onto the page.
func (c *Client) GetPage(ctx context.Context, name string) (*notegraph.PageContent, error) {
	page, err := c.getPage(ctx, name)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, notegraph.Errorf(notegraph.ENOTFOUND, "Page %q not found.", name)
	}

	blocks, err := c.getPageBlocksTree(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 && len(blocks[0].Properties) > 0 {
		page.Properties = blocks[0].Properties
	}

	return &notegraph.PageContent{Page: page, Blocks: blocks}, nil
}

// DeletePage deletes a page by name. Deleting a page that does not
// exist is an error rather than a no-op, so typos surface.
func (c *Client) DeletePage(ctx context.Context, name string) error {
	if err := c.requirePage(ctx, name); err != nil {
		return err
	}
	return c.deletePage(ctx, name)
}

// Search queries across the whole graph.
func (c *Client) Search(ctx context.Context, query string, opts notegraph.SearchOptions) (*notegraph.SearchResult, error) {
	if query == "" {
		return nil, notegraph.Errorf(notegraph.EINVALID, "Search query is required.")
	}
	return c.search(ctx, query, opts)
}

// requirePage returns ENOTFOUND unless a page with the given name (or
// original display name) exists.
func (c *Client) requirePage(ctx context.Context, name string) error {
	pages, err := c.getAllPages(ctx)
	if err != nil {
		return err
	}
	for _, p := range pages {
		if p.Name == name || p.OriginalName == name {
			return nil
		}
	}
	return notegraph.Errorf(notegraph.ENOTFOUND, "Page %q not found.", name)
}

// appendBlocks builds a block tree on a page without an anchor block:
// each root is appended, then its children are batch-inserted under it.
func (c *Client) appendBlocks(ctx context.Context, name string, blocks []*notegraph.BatchBlock) error {
	for _, block := range blocks {
		created, err := c.appendBlockInPage(ctx, name, block.Content, block.Properties)
		if err != nil {
			return err
		}
		if len(block.Children) > 0 && created != nil && created.UUID != "" {
			if err := c.insertBatchBlock(ctx, created.UUID, block.Children, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// pageProperties reads the current page properties off the first block.
func (c *Client) pageProperties(ctx context.Context, name string) (map[string]any, error) {
	roots, err := c.getPageBlocksTree(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, nil
	}
	return roots[0].Properties, nil
}

// setPageProperties writes properties onto the page's first block, one
// upsert per key. Tag-like values given as truthy-keyed maps are
// flattened to arrays, which is the shape Logseq renders as tag lists.
func (c *Client) setPageProperties(ctx context.Context, name string, properties map[string]any) error {
	roots, err := c.getPageBlocksTree(ctx, name)
	if err != nil {
		return err
	}
	if len(roots) == 0 || roots[0].UUID == "" {
		return notegraph.Errorf(notegraph.EINVALID, "Page %q has no blocks to hold properties.", name)
	}

	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	first := roots[0].UUID
	for _, key := range keys {
		if err := c.upsertBlockProperty(ctx, first, key, normalizePropertyValue(key, properties[key])); err != nil {
			return err
		}
	}
	return nil
}

func normalizePropertyValue(key string, value any) any {
	switch key {
	case "tags", "alias", "aliases":
		m, ok := value.(map[string]any)
		if !ok {
			return value
		}
		var keys []string
		for k, v := range m {
			if truthy(v) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		return keys
	}
	return value
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case nil:
		return false
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	}
	return true
}
