package allocator

// Strategy is the policy choosing which free block satisfies a request.
type Strategy uint16

const (
	// FirstFit picks the free block with the lowest start.
	FirstFit Strategy = 0
	// BestFit picks the smallest free block still large enough.
	BestFit Strategy = 1
	// WorstFit picks the largest free block.
	WorstFit Strategy = 2
	// NextFit scans circularly from where the previous allocation landed.
	NextFit Strategy = 3
)

// String ...
func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	case NextFit:
		return "next-fit"
	default:
		return "unknown"
	}
}

// ParseStrategy ...
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "first-fit":
		return FirstFit, true
	case "best-fit":
		return BestFit, true
	case "worst-fit":
		return WorstFit, true
	case "next-fit":
		return NextFit, true
	default:
		return 0, false
	}
}

const notFound = -1

func findFirstFit(blocks []Block, size int) int {
	for i, b := range blocks {
		if !b.Allocated && b.Size >= size {
			return i
		}
	}
	return notFound
}

func findBestFit(blocks []Block, size int) int {
	result := notFound
	for i, b := range blocks {
		if b.Allocated || b.Size < size {
			continue
		}
		if result == notFound || b.Size < blocks[result].Size {
			result = i
		}
	}
	return result
}

func findWorstFit(blocks []Block, size int) int {
	result := notFound
	for i, b := range blocks {
		if b.Allocated || b.Size < size {
			continue
		}
		if result == notFound || b.Size > blocks[result].Size {
			result = i
		}
	}
	return result
}

// findNextFit wraps exactly once around the block list starting at cursor.
// The cursor is taken modulo len(blocks) since splits and merges renumber
// indices between allocations.
func findNextFit(blocks []Block, size int, cursor int) int {
	n := len(blocks)
	start := cursor % n
	for k := 0; k < n; k++ {
		i := (start + k) % n
		b := blocks[i]
		if !b.Allocated && b.Size >= size {
			return i
		}
	}
	return notFound
}
