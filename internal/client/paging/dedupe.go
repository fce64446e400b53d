package paging

// Dedupe returns items without records whose identity appeared earlier in
// the slice. The first occurrence wins and order is preserved.
func Dedupe[T Identified](items []T) []T {
	return Merge(nil, items)
}

// Merge appends to acc the records of incoming whose identity is not already
// present in acc or earlier in incoming.
func Merge[T Identified](acc, incoming []T) []T {
	seen := make(map[int64]struct{}, len(acc)+len(incoming))
	for _, it := range acc {
		if id, ok := it.Identity(); ok {
			seen[id] = struct{}{}
		}
	}

	out := acc
	for _, it := range incoming {
		id, ok := it.Identity()
		if ok {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		out = append(out, it)
	}
	return out
}
