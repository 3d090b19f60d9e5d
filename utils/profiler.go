package utils

import (
	. "github.com/Luismorlan/choirmux/utils/flag"
	Logger "github.com/Luismorlan/choirmux/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// StartProfiler starts the Datadog continuous profiler. Only CPU and heap
// profiles are collected.
func StartProfiler() {
	if err := profiler.Start(
		profiler.WithService(*ServiceName),
		profiler.WithEnv(ddEnv()),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
		),
	); err != nil {
		Logger.Log.WithError(err).Error("profiler failed to start")
	}
}

// Stop profiler, OK to be closed multiple times
func CloseProfiler() {
	// Datadog profiler
	profiler.Stop()
}
