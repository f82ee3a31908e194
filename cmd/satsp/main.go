// Command satsp searches a short closed tour through a set of 2-D points with
// simulated annealing and prints the result of each run.
//
// Usage:
//
//	satsp                         # built-in 20-city instance, 3 chained runs
//	satsp --config cities.yaml    # cities and schedule from a YAML file
//	satsp --runs 8 --parallel     # 8 independent runs on all cores
//	satsp --format json --seed 42 # reproducible, machine-readable output
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
