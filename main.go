package main

import (
	"os"
	"runtime"

	"github.com/gregjohnson2017/bounce/pkg/app"
	"github.com/gregjohnson2017/bounce/pkg/config"
	"github.com/gregjohnson2017/bounce/pkg/log"
	"github.com/gregjohnson2017/bounce/pkg/perf"
	"github.com/gregjohnson2017/bounce/pkg/platform"
	"github.com/gregjohnson2017/bounce/pkg/sim"
)

func init() {
	// SDL and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetInfoOutput(os.Stderr)
	log.SetWarnOutput(os.Stderr)
	log.SetFatalOutput(os.Stderr)
	log.SetPerfOutput(os.Stderr)

	cfg := config.FromArgs(os.Args[1:])
	perf.SetMetricsEnabled(cfg.Metrics)

	shell, err := platform.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	application := app.New(shell, cfg, sim.SystemClock{})
	application.Run()
	application.Quit()
	shell.Destroy()
}
