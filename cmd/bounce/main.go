// Package main runs the bounce demo in an OpenGL window.
package main

import (
	"flag"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/log"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	scale := flag.Int("scale", 2, "integer window scale factor")
	fps := flag.Int("fps", 60, "frame rate cap (0 = uncapped)")
	showFPS := flag.Bool("showfps", false, "log measured frame rate once per second")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := log.DefaultConfig()
	if *debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	var emu Emulator
	if err := emu.Initialize(*scale); err != nil {
		logger.Fatal(err.Error())
	}
	defer emu.Terminate()

	var frameTime time.Duration
	if *fps > 0 {
		frameTime = time.Second / time.Duration(*fps)
	}
	emu.Loop(frameTime, *showFPS, logger)
}
