package notegraph

// MergeProperties combines frontmatter properties with explicit properties
// supplied by the caller. Explicit properties win on key collision. The
// inputs are not modified; the result is nil when both inputs are empty.
func MergeProperties(frontmatter, explicit map[string]any) map[string]any {
	if len(frontmatter) == 0 && len(explicit) == 0 {
		return nil
	}

	merged := make(map[string]any, len(frontmatter)+len(explicit))
	for k, v := range frontmatter {
		merged[k] = v
	}
	for k, v := range explicit {
		merged[k] = v
	}
	return merged
}
