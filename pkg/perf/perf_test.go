package perf_test

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/gregjohnson2017/bounce/pkg/log"
	"github.com/gregjohnson2017/bounce/pkg/perf"
)

func TestRecordAverageTime(t *testing.T) {
	defer perf.Reset()
	defer perf.SetMetricsEnabled(false)

	t.Run("disabled records nothing", func(t *testing.T) {
		perf.Reset()
		perf.SetMetricsEnabled(false)
		perf.RecordAverageTime("sim.Step", 10)
		if _, ok := perf.Average("sim.Step"); ok {
			t.Fatal("expected no samples while disabled")
		}
	})
	t.Run("enabled averages samples", func(t *testing.T) {
		perf.Reset()
		perf.SetMetricsEnabled(true)
		perf.RecordAverageTime("sim.Step", 10)
		perf.RecordAverageTime("sim.Step", 30)
		avg, ok := perf.Average("sim.Step")
		if !ok || avg != 20*time.Nanosecond {
			t.Fatalf("expected 20ns, got %v (ok=%v)", avg, ok)
		}
	})
}

func TestLogMetrics(t *testing.T) {
	var buf bytes.Buffer
	log.SetPerfOutput(&buf)
	defer log.SetPerfOutput(ioutil.Discard)
	defer perf.Reset()
	defer perf.SetMetricsEnabled(false)

	perf.Reset()
	perf.SetMetricsEnabled(true)
	perf.RecordAverageTime("sim.Render", int64(2*time.Microsecond))
	perf.RecordAverageTime("sim.Step", int64(time.Microsecond))
	perf.LogMetrics()

	out := buf.String()
	render := strings.Index(out, "- sim.Render = 2µs (1 samples)")
	step := strings.Index(out, "- sim.Step = 1µs (1 samples)")
	if render < 0 || step < 0 || render > step {
		t.Fatalf("unexpected metrics output:\n%v", out)
	}
}
