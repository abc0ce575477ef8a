package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/QuangTung97/blocksim"
	"github.com/QuangTung97/blocksim/allocator"
)

var (
	app = kingpin.New("blocksim", "Simulated block-list memory allocator.")

	totalSize = app.Flag("size", "Total size of the simulated space in bytes.").
		Default("1048576").Int()
	strategyName = app.Flag("strategy", "Fit strategy: first-fit, best-fit, worst-fit or next-fit.").
		Default("first-fit").String()
	seed = app.Flag("seed", "Workload random seed.").
		Default("1").Int64()
	numOps = app.Flag("ops", "Number of workload operations.").
		Default("200").Int()
	maxAlloc = app.Flag("max-alloc", "Largest single allocation in bytes.").
		Default("65536").Int()
	freePct = app.Flag("free-pct", "Percentage of operations that free.").
		Default("40").Uint64()
	defragEvery = app.Flag("defrag-every", "Defragment every n-th operation, 0 disables.").
		Default("0").Int()
	defragAfter = app.Flag("defrag", "Defragment once after the workload finishes.").Bool()
)

var (
	usedText = color.New(color.FgRed)
	freeText = color.New(color.FgGreen)
)

func printBlocks(blocks []allocator.Block) {
	for _, b := range blocks {
		if b.Allocated {
			usedText.Printf("  [%8d, %8d) used  id=%d\n", b.Start, b.Start+b.Size, b.Owner)
		} else {
			freeText.Printf("  [%8d, %8d) free\n", b.Start, b.Start+b.Size)
		}
	}
}

func printStats(stats allocator.Stats) {
	fmt.Printf("  allocated: %s / %s, largest free block: %s\n",
		humanize.IBytes(uint64(stats.AllocatedBytes)),
		humanize.IBytes(uint64(stats.TotalSize)),
		humanize.IBytes(uint64(stats.LargestFreeBlock)),
	)
	fmt.Printf("  fragmentation: %.2f%%, active allocations: %d, free blocks: %d\n",
		stats.FragmentationPct,
		stats.ActiveAllocationCount,
		stats.FreeBlockCount,
	)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	strategy, ok := allocator.ParseStrategy(*strategyName)
	if !ok {
		app.Fatalf("unknown strategy: %s", *strategyName)
	}
	if *freePct > 100 {
		app.Fatalf("free-pct must be in [0, 100]")
	}

	alloc, result := blocksim.RunWorkload(blocksim.WorkloadConfig{
		TotalSize:    *totalSize,
		Strategy:     strategy,
		Seed:         *seed,
		NumOps:       *numOps,
		MaxAllocSize: *maxAlloc,
		FreeRatio:    blocksim.NewRational(*freePct, 100),
		DefragEvery:  *defragEvery,
	})

	fmt.Printf("%s: %d allocs, %d frees, %d defrags, %d out-of-memory\n",
		strategy, result.Allocs, result.Frees, result.Defrags, result.OOMs)
	printBlocks(alloc.Blocks())
	printStats(alloc.GetStats())

	if *defragAfter {
		alloc.Defragment()
		fmt.Println("after defragment:")
		printBlocks(alloc.Blocks())
		printStats(alloc.GetStats())
	}
}
