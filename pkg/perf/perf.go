// Package perf keeps running averages of named timings and reports them
// through the PERF logger.
package perf

import (
	"sort"
	"time"

	"github.com/gregjohnson2017/bounce/pkg/log"
)

type average struct {
	// nanoseconds
	total int64
	// recordings
	count int64
}

var enabled bool
var averages = make(map[string]average)

// RecordAverageTime adds a sample to the average kept under key. It does
// nothing unless metrics are enabled.
func RecordAverageTime(key string, nanos int64) {
	if !enabled {
		return
	}
	avg := averages[key]
	avg.total += nanos
	avg.count++
	averages[key] = avg
}

// Average returns the mean duration recorded under key and whether any
// samples exist.
func Average(key string) (time.Duration, bool) {
	avg, ok := averages[key]
	if !ok || avg.count == 0 {
		return 0, false
	}
	return time.Duration(avg.total / avg.count), true
}

// SetMetricsEnabled turns recording on or off.
func SetMetricsEnabled(enable bool) {
	enabled = enable
}

// Reset drops every recorded sample.
func Reset() {
	averages = make(map[string]average)
}

// LogMetrics prints every average in key order.
func LogMetrics() {
	if !enabled || len(averages) == 0 {
		return
	}

	keys := make([]string, 0, len(averages))
	for k := range averages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Perf("average metrics")
	for _, k := range keys {
		avg, _ := Average(k)
		log.Perff("- %v = %v (%v samples)", k, avg, averages[k].count)
	}
}
