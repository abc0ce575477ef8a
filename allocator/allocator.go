package allocator

import "time"

// Config ...
type Config struct {
	TotalSize int
	Strategy  Strategy
}

// Allocation is one history entry per successful Allocate call.
// Records are append-only: Free only flips Freed, nothing is ever removed,
// so IDs stay in strictly increasing order.
type Allocation struct {
	ID        uint64
	Size      int
	Freed     bool
	CreatedAt time.Time
}

// Allocator simulates dynamic memory allocation over an abstract address
// space. It owns an ordered list of contiguous blocks covering
// [0, totalSize) and services requests with a configurable fit strategy.
// Not safe for concurrent use.
type Allocator struct {
	totalSize   int
	blocks      []Block
	allocations []Allocation
	nextID      uint64
	strategy    Strategy

	// cursor remembers where the previous allocation landed, used only by
	// next-fit to resume its circular scan.
	cursor int

	now func() time.Time
}

func validateConfig(conf Config) {
	if conf.TotalSize <= 0 {
		panic("TotalSize must > 0")
	}
	if conf.Strategy > NextFit {
		panic("unknown Strategy")
	}
}

// New ...
func New(conf Config) *Allocator {
	validateConfig(conf)
	return &Allocator{
		totalSize: conf.TotalSize,
		blocks: []Block{
			{Start: 0, Size: conf.TotalSize},
		},
		nextID:   1,
		strategy: conf.Strategy,
		now:      time.Now,
	}
}

func (a *Allocator) search(size int) int {
	switch a.strategy {
	case BestFit:
		return findBestFit(a.blocks, size)
	case WorstFit:
		return findWorstFit(a.blocks, size)
	case NextFit:
		return findNextFit(a.blocks, size, a.cursor)
	default:
		return findFirstFit(a.blocks, size)
	}
}

// Allocate reserves size bytes and returns the new allocation id.
// Returns false without touching any state when no free block is large
// enough under the active strategy, or when size is not positive.
func (a *Allocator) Allocate(size int) (uint64, bool) {
	if size <= 0 {
		return 0, false
	}
	index := a.search(size)
	if index == notFound {
		return 0, false
	}

	id := a.nextID
	a.nextID++

	chosen := a.blocks[index]
	if chosen.Size == size {
		a.blocks[index].Allocated = true
		a.blocks[index].Owner = id
	} else {
		a.blocks[index] = Block{
			Start:     chosen.Start,
			Size:      size,
			Allocated: true,
			Owner:     id,
		}
		remainder := Block{
			Start: chosen.Start + size,
			Size:  chosen.Size - size,
		}
		a.blocks = append(a.blocks, Block{})
		copy(a.blocks[index+2:], a.blocks[index+1:])
		a.blocks[index+1] = remainder
	}

	a.cursor = index
	a.allocations = append(a.allocations, Allocation{
		ID:        id,
		Size:      size,
		CreatedAt: a.now(),
	})

	return id, true
}

func findAllocationIndex(allocations []Allocation, id uint64) int {
	first := 0
	last := len(allocations)
	for first != last {
		mid := (first + last) >> 1
		if allocations[mid].ID < id {
			first = mid + 1
		} else {
			last = mid
		}
	}
	if first == len(allocations) || allocations[first].ID != id {
		return notFound
	}
	return first
}

// Free releases the block allocated under id and merges adjacent free
// blocks. Returns false when id is not currently allocated, so freeing
// twice is a no-op.
func (a *Allocator) Free(id uint64) bool {
	index := notFound
	for i, b := range a.blocks {
		if b.Allocated && b.Owner == id {
			index = i
			break
		}
	}
	if index == notFound {
		return false
	}

	a.blocks[index].Allocated = false
	a.blocks[index].Owner = 0

	pos := findAllocationIndex(a.allocations, id)
	if pos != notFound {
		a.allocations[pos].Freed = true
	}

	a.blocks = mergeAdjacentFree(a.blocks)
	return true
}

// SetStrategy switches the fit strategy. The next-fit cursor is reset to 0
// since its position is meaningless under another strategy's history.
func (a *Allocator) SetStrategy(strategy Strategy) {
	if strategy > NextFit {
		panic("unknown Strategy")
	}
	a.strategy = strategy
	a.cursor = 0
}

// Defragment compacts all allocated blocks to the low end of the space,
// keeping their relative order, and consolidates the free space into at
// most one trailing block. Sizes and allocation ids never change.
func (a *Allocator) Defragment() {
	reordered := make([]Block, 0, len(a.blocks))
	for _, b := range a.blocks {
		if b.Allocated {
			reordered = append(reordered, b)
		}
	}
	for _, b := range a.blocks {
		if !b.Allocated {
			reordered = append(reordered, b)
		}
	}

	start := 0
	for i := range reordered {
		reordered[i].Start = start
		start += reordered[i].Size
	}

	a.blocks = mergeAdjacentFree(reordered)
}

// Reset ...
func (a *Allocator) Reset() {
	a.ResetSize(a.totalSize)
}

// ResetSize discards every block and allocation record, replacing the
// space with a single free block of totalSize bytes.
func (a *Allocator) ResetSize(totalSize int) {
	if totalSize <= 0 {
		panic("totalSize must > 0")
	}
	a.totalSize = totalSize
	a.blocks = []Block{
		{Start: 0, Size: totalSize},
	}
	a.allocations = nil
	a.nextID = 1
	a.cursor = 0
}

// TotalSize ...
func (a *Allocator) TotalSize() int {
	return a.totalSize
}

// GetStrategy ...
func (a *Allocator) GetStrategy() Strategy {
	return a.strategy
}

// Blocks returns a copy of the current block list in address order,
// for rendering.
func (a *Allocator) Blocks() []Block {
	result := make([]Block, len(a.blocks))
	copy(result, a.blocks)
	return result
}

// Allocations returns a copy of the allocation history in id order,
// for the activity log.
func (a *Allocator) Allocations() []Allocation {
	result := make([]Allocation, len(a.allocations))
	copy(result, a.allocations)
	return result
}
