// cmd/qfisim/main.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// qfisim drives flight instrument panels from a script of keyframes,
// without any windowing system; the final state of each panel's scene can
// be printed, and the per-tick command buffers can be captured to a file
// and replayed later.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mmp/qfi/log"
	"github.com/mmp/qfi/util"

	"github.com/apenwarr/fixconsole"
)

var (
	configFile  = flag.String("config", "", "filename of JSON file with the panel configuration")
	scriptFile  = flag.String("script", "", "filename of JSON flight script")
	recordFile  = flag.String("record", "", "capture every tick's command buffers to this file")
	replayFile  = flag.String("replay", "", "replay a capture file rather than running a script")
	showSummary = flag.Bool("summary", false, "print the final state of every panel as JSON")
	showDump    = flag.Bool("dump", false, "dump the final state of every panel")
	logLevel    = flag.String("loglevel", "", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	cpuprofile  = flag.String("cpuprofile", "", "write CPU profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	// The config file may give the log settings, so it's loaded before
	// there's a logger.
	config, err := LoadConfig(*configFile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	if *logDir != "" {
		config.LogDir = *logDir
	}
	if *recordFile != "" {
		config.Capture = *recordFile
	}

	lg := log.New(config.LogLevel, config.LogDir)
	defer lg.CatchAndReportCrash()

	if err := run(config, lg, os.Stdout); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(config *Config, lg *log.Logger, w io.Writer) (err error) {
	profiler, err := util.CreateProfiler(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, profiler.Cleanup()) }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var scenes []PanelScene
	if *replayFile != "" {
		scenes, err = replayCapture(ctx, *replayFile, lg)
	} else {
		scenes, err = runScript(ctx, config, *scriptFile, lg)
	}
	if err != nil {
		return err
	}

	if *showSummary {
		if err := WriteSummary(w, scenes); err != nil {
			return err
		}
	}
	if *showDump {
		DumpScenes(w, scenes)
	}
	if !*showSummary && !*showDump {
		for _, ps := range scenes {
			st := ps.Scene.Stats()
			fmt.Fprintf(w, "%s: %d elements, %s\n", ps.Name, len(ps.Scene.Nodes()), st.String())
		}
	}
	return nil
}

func runScript(ctx context.Context, config *Config, fn string, lg *log.Logger) (scenes []PanelScene, err error) {
	if fn == "" {
		return nil, ErrNoScript
	}
	script, err := LoadScript(fn)
	if err != nil {
		return nil, err
	}

	sim, err := NewSimulator(config, script, lg)
	if err != nil {
		return nil, err
	}
	defer sim.Close()

	if config.Capture != "" {
		cw, err := util.CreateCapture[Frame](config.Capture)
		if err != nil {
			return nil, err
		}
		defer func() {
			if cerr := cw.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("%s: %w", config.Capture, cerr))
			} else {
				lg.Infof("%s: captured %d frames", config.Capture, cw.Count())
			}
		}()
		sim.Record(cw)
	}

	if err := sim.Run(ctx); err != nil {
		return nil, err
	}
	return sim.Scenes(), nil
}

func replayCapture(ctx context.Context, fn string, lg *log.Logger) ([]PanelScene, error) {
	cr, err := util.OpenCapture[Frame](fn)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	scenes, err := Replay(ctx, cr, lg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return scenes, nil
}
