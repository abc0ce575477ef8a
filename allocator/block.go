package allocator

// Block is a contiguous range of the simulated address space.
// Owner is the allocation id when Allocated is true, 0 otherwise.
type Block struct {
	Start     int
	Size      int
	Allocated bool
	Owner     uint64
}

// mergeAdjacentFree collapses runs of consecutive free blocks into one.
// Merging keeps the left block's start and sums the sizes.
func mergeAdjacentFree(blocks []Block) []Block {
	merged := blocks[:0]
	for _, b := range blocks {
		n := len(merged)
		if n > 0 && !merged[n-1].Allocated && !b.Allocated {
			merged[n-1].Size += b.Size
			continue
		}
		merged = append(merged, b)
	}
	return merged
}
