package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/alnah/go-mdquiz/internal/config"
)

// maxAutoWorkers caps the worker count derived from GOMAXPROCS.
const maxAutoWorkers = 16

// ErrInvalidWorkerCount indicates a worker count outside 0..config.MaxWorkerCount.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkerCount {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkerCount)
	}
	return nil
}

// resolveWorkers determines how many pages are built in parallel.
// Priority: explicit count > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
