package allocator

// Stats ...
type Stats struct {
	TotalSize             int
	AllocatedBytes        int
	FreeBytes             int
	LargestFreeBlock      int
	FragmentationPct      float64
	ActiveAllocationCount int
	FreeBlockCount        int
}

// GetStats computes a snapshot of the current state. FragmentationPct is
// the share of free space not usable as one contiguous run:
// (free - largest free block) / free * 100, and 0 when nothing is free.
func (a *Allocator) GetStats() Stats {
	stats := Stats{
		TotalSize: a.totalSize,
	}

	for _, b := range a.blocks {
		if b.Allocated {
			stats.AllocatedBytes += b.Size
			continue
		}
		stats.FreeBytes += b.Size
		stats.FreeBlockCount++
		if b.Size > stats.LargestFreeBlock {
			stats.LargestFreeBlock = b.Size
		}
	}

	if stats.FreeBytes > 0 {
		stats.FragmentationPct = float64(stats.FreeBytes-stats.LargestFreeBlock) /
			float64(stats.FreeBytes) * 100
	}

	for _, record := range a.allocations {
		if !record.Freed {
			stats.ActiveAllocationCount++
		}
	}

	return stats
}
