package blocksim

import (
	"math/rand"

	"github.com/QuangTung97/blocksim/allocator"
)

// WorkloadConfig ...
type WorkloadConfig struct {
	TotalSize    int
	Strategy     allocator.Strategy
	Seed         int64
	NumOps       int
	MaxAllocSize int

	// FreeRatio is the fraction of operations that free a live allocation
	// instead of allocating. An operation only frees when something is live.
	FreeRatio Rational

	// DefragEvery runs a defragmentation pass every n-th operation,
	// 0 disables.
	DefragEvery int
}

// WorkloadResult ...
type WorkloadResult struct {
	Allocs  int
	Frees   int
	Defrags int
	OOMs    int

	Stats allocator.Stats
}

func workloadValidateConfig(conf WorkloadConfig) {
	if conf.TotalSize <= 0 {
		panic("TotalSize must > 0")
	}
	if conf.NumOps < 0 {
		panic("NumOps must >= 0")
	}
	if conf.MaxAllocSize <= 0 {
		panic("MaxAllocSize must > 0")
	}
	if conf.FreeRatio.Denominator == 0 {
		panic("FreeRatio.Denominator must > 0")
	}
}

// RunWorkload drives a fresh Allocator through a seeded random mix of
// allocate, free and defragment operations. The same config always
// produces the same final state.
func RunWorkload(conf WorkloadConfig) (*allocator.Allocator, WorkloadResult) {
	workloadValidateConfig(conf)

	alloc := allocator.New(allocator.Config{
		TotalSize: conf.TotalSize,
		Strategy:  conf.Strategy,
	})
	rng := rand.New(rand.NewSource(conf.Seed))
	freeThreshold := conf.FreeRatio.MulUint32(1 << 16)

	var result WorkloadResult
	var live []uint64

	for op := 1; op <= conf.NumOps; op++ {
		if conf.DefragEvery > 0 && op%conf.DefragEvery == 0 {
			alloc.Defragment()
			result.Defrags++
			continue
		}

		if len(live) > 0 && uint32(rng.Intn(1<<16)) < freeThreshold {
			pos := rng.Intn(len(live))
			alloc.Free(live[pos])
			live[pos] = live[len(live)-1]
			live = live[:len(live)-1]
			result.Frees++
			continue
		}

		size := 1 + rng.Intn(conf.MaxAllocSize)
		id, ok := alloc.Allocate(size)
		if !ok {
			result.OOMs++
			continue
		}
		live = append(live, id)
		result.Allocs++
	}

	result.Stats = alloc.GetStats()
	return alloc, result
}
