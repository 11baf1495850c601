// This file is part of Arbitrary.
//
// Arbitrary is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arbitrary is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arbitrary.  If not, see <https://www.gnu.org/licenses/>.

// Package performance contains helpers for profiling the arithmetic
// packages. Nothing in here affects the behaviour of the library, it is for
// development use.
package performance

import (
	"os"
	"runtime/pprof"

	"github.com/go-echarts/statsview"
	"github.com/ladle-gh/arbitrary/curated"
	"github.com/ladle-gh/arbitrary/logger"
)

// error pattern for all failures in this package
const profilingError = "performance: %v"

// RunStatsView launches the live statistics viewer in its own goroutine. The
// returned ViewManager can be used to stop the viewer:
//
//	mgr := performance.RunStatsView()
//	defer mgr.Stop()
//
// Any error from the underlying server appears in the central log.
func RunStatsView() *statsview.ViewManager {
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Log(logger.Allow, "performance", err)
		}
	}()
	return mgr
}

// ProfileCPU runs the supplied function under the CPU profiler, writing the
// profile to the named file.
func ProfileCPU(filename string, run func()) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(profilingError, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Errorf(profilingError, err)
	}
	defer pprof.StopCPUProfile()

	run()
	return nil
}

// ProfileMemory writes a snapshot of the heap to the named file. Best called
// after the workload of interest has completed.
func ProfileMemory(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(profilingError, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return curated.Errorf(profilingError, err)
	}
	return nil
}
