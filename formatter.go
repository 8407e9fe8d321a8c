package notegraph

import "strings"

// FormatRemoteBlocks renders a remote block tree as outline text: one
// bullet per block, two-space indentation per level. Blocks with empty
// content are skipped together with their subtrees. maxDepth < 0 means
// unlimited.
func FormatRemoteBlocks(blocks []*RemoteBlock, maxDepth int) string {
	var lines []string
	for _, block := range blocks {
		lines = appendRemoteBlock(lines, block, 0, maxDepth)
	}
	return strings.Join(lines, "\n")
}

func appendRemoteBlock(lines []string, block *RemoteBlock, depth, maxDepth int) []string {
	content := strings.TrimSpace(block.Content)
	if content == "" {
		return lines
	}

	lines = append(lines, strings.Repeat("  ", depth)+"- "+content)

	if maxDepth >= 0 && depth >= maxDepth {
		return lines
	}
	for _, child := range block.Children {
		lines = appendRemoteBlock(lines, child, depth+1, maxDepth)
	}
	return lines
}

// FormatBatchBlocks renders a batch block tree as outline text in the
// same shape as FormatRemoteBlocks. Used to compare local parses against
// remote pages.
func FormatBatchBlocks(blocks []*BatchBlock) string {
	var lines []string
	for _, block := range blocks {
		lines = appendBatchBlock(lines, block, 0)
	}
	return strings.Join(lines, "\n")
}

func appendBatchBlock(lines []string, block *BatchBlock, depth int) []string {
	content := strings.TrimSpace(block.Content)
	if content == "" {
		return lines
	}

	lines = append(lines, strings.Repeat("  ", depth)+"- "+content)
	for _, child := range block.Children {
		lines = appendBatchBlock(lines, child, depth+1)
	}
	return lines
}
