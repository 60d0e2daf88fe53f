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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-quicksort/qsort"
)

// Config is the top-level bench configuration, decoded from TOML.
type Config struct {
	Bench BenchConfig `toml:"bench"`
}

// BenchConfig controls one bench run.
type BenchConfig struct {
	// Sizes lists the dataset sizes to time, one run per size.
	Sizes []int `toml:"sizes"`

	// Trials is the number of timed repetitions per size; the summary
	// reports the best trial.
	Trials int `toml:"trials"`

	// Pivot names the pivot policy: "random" or "middle".
	Pivot string `toml:"pivot"`

	// DepthLimit bounds the parallel sort's fork depth; live goroutines
	// per sort are at most 2^DepthLimit.
	DepthLimit int `toml:"depth_limit"`

	// Seed seeds dataset generation. Zero means non-deterministic.
	Seed uint64 `toml:"seed"`

	// Workers sizes the dataset-generation pool. Zero means GOMAXPROCS.
	Workers int `toml:"workers"`
}

func defaultConfig() Config {
	return Config{
		Bench: BenchConfig{
			Sizes:      []int{10000, 100000, 1000000},
			Trials:     5,
			Pivot:      "random",
			DepthLimit: qsort.DefaultDepthLimit,
		},
	}
}

// loadConfig returns the defaults overlaid with the TOML file at path, if
// any.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return config, errors.Wrapf(err, "decoding config %s", path)
		}
	}

	if err := config.Bench.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *BenchConfig) validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench.sizes must not be empty")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Errorf("bench.sizes entry %d is negative", n)
		}
	}
	if c.Trials < 1 {
		return errors.Errorf("bench.trials must be at least 1, got %d", c.Trials)
	}
	if c.DepthLimit < 0 {
		return errors.Errorf("bench.depth_limit must not be negative, got %d", c.DepthLimit)
	}
	if _, err := c.pivotFunc(); err != nil {
		return err
	}
	return nil
}

// pivotFunc maps the configured policy name to its implementation.
func (c *BenchConfig) pivotFunc() (qsort.PivotFunc, error) {
	switch c.Pivot {
	case "random":
		return qsort.RandomPivot, nil
	case "middle":
		return qsort.MiddlePivot, nil
	default:
		return nil, errors.Errorf("unknown pivot policy %q (want \"random\" or \"middle\")", c.Pivot)
	}
}
