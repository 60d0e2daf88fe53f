// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/qsort"
	"github.com/ajroetker/go-quicksort/workerpool"
)

func benchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sequential vs parallel quicksort over configured sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runBench(config.Bench)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	return cmd
}

func runBench(config BenchConfig) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	pivot, err := config.pivotFunc()
	if err != nil {
		return err
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	pool := workerpool.New(config.Workers)
	defer pool.Close()

	logger.Info("bench starting",
		zap.Ints("sizes", config.Sizes),
		zap.Int("trials", config.Trials),
		zap.String("pivot", config.Pivot),
		zap.Int("depth_limit", config.DepthLimit),
		zap.Uint64("seed", seed),
		zap.Int("workers", pool.NumWorkers()),
	)

	for _, size := range config.Sizes {
		ref := generateDataset(pool, size, seed)
		scratch := make([]float64, size)

		bestSeq := timeTrials(logger, "sequential", size, config.Trials, ref, scratch, func(d []float64) {
			qsort.SortPivot(d, pivot, qsort.Less[float64])
		})
		bestPar := timeTrials(logger, "parallel", size, config.Trials, ref, scratch, func(d []float64) {
			qsort.ParallelSortDepth(d, config.DepthLimit, pivot, qsort.Less[float64])
		})

		fmt.Printf("%12s elements  sequential %12v  parallel %12v  speedup %.2fx  (%s elem/s parallel)\n",
			humanize.Comma(int64(size)), bestSeq, bestPar,
			float64(bestSeq)/float64(bestPar),
			humanize.Comma(int64(rate(size, bestPar))),
		)
	}

	return nil
}

// generateDataset fills a fresh slice of the given size with uniform
// values, one deterministic PCG stream per pool chunk.
func generateDataset(pool *workerpool.Pool, size int, seed uint64) []float64 {
	data := make([]float64, size)
	pool.ParallelFor(size, func(start, end int) {
		src := rand.New(rand.NewPCG(seed, uint64(start)))
		for i := start; i < end; i++ {
			data[i] = src.Float64() * 1e6
		}
	})
	return data
}

// timeTrials runs the sort over identical copies of ref and returns the
// best wall time. Each trial's result is verified sorted.
func timeTrials(logger *zap.Logger, name string, size, trials int, ref, scratch []float64, sort func([]float64)) time.Duration {
	best := time.Duration(0)

	for trial := 1; trial <= trials; trial++ {
		copy(scratch, ref)

		start := time.Now()
		sort(scratch)
		elapsed := time.Since(start)

		if !qsort.IsSorted(scratch) {
			logger.Error("result not sorted",
				zap.String("variant", name),
				zap.Int("size", size),
				zap.Int("trial", trial),
			)
			continue
		}

		logger.Debug("trial complete",
			zap.String("variant", name),
			zap.Int("size", size),
			zap.Int("trial", trial),
			zap.Duration("elapsed", elapsed),
		)

		if best == 0 || elapsed < best {
			best = elapsed
		}
	}

	return best
}

func rate(size int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(size) / d.Seconds()
}
