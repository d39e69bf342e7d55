// Package main runs the bounce demo on a terminal or headless display.
package main

import (
	"flag"
	"time"

	"github.com/p47t/bounce"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

type options struct {
	frames   uint64
	fps      int
	headless bool
	debug    bool
	quiet    bool
}

func main() {
	var opts options
	flag.Uint64Var(&opts.frames, "frames", 0, "number of frames to run (0 = forever)")
	flag.IntVar(&opts.fps, "fps", 60, "frame rate cap (0 = uncapped)")
	flag.BoolVar(&opts.headless, "headless", false, "run without terminal output")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.BoolVar(&opts.quiet, "q", false, "quiet mode")
	flag.Parse()

	logger := createLogger(opts.debug, opts.quiet)
	ctx := app.Context()

	sys := bounce.NewSystem()
	sys.Initialize()
	if opts.fps > 0 {
		sys.Interval = time.Second / time.Duration(opts.fps)
	}

	headless := bounce.NewHeadlessOutput()
	if opts.headless {
		sys.Screen().Attach(headless)
	} else {
		term := bounce.NewTerminalOutput()
		sys.Screen().Attach(term)
		defer term.Close()
	}

	output := "terminal"
	if opts.headless {
		output = "headless"
	}
	logger.Debug("Starting demo",
		log.Int("frames", int(opts.frames)),
		log.Int("fps", opts.fps),
		log.String("output", output))

	if opts.frames > 0 {
		sys.RunFrames(ctx, opts.frames)
	} else {
		sys.Run(ctx)
	}

	if opts.headless {
		logger.Info("Done", log.Int("frames_presented", int(headless.FrameCount())))
	}
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
