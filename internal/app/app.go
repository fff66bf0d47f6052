// Package app holds the process setup shared by the tutorial programs: thread
// pinning, logging, flags, profiling and the exit status.
package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"

	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

func init() {
	// GLFW, SDL and OpenGL calls must all come from the main thread.
	runtime.LockOSThread()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// Main runs a program and exits with status 1 if it fails. run receives the
// configuration resolved from def and the command line; any teardown it
// defers has happened by the time the error is printed.
func Main(def config.Config, run func(config.Config) error) {
	name := filepath.Base(os.Args[0])
	if err := Run(name, os.Args[1:], def, run); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

// Run is Main without the exit.
func Run(name string, args []string, def config.Config, run func(config.Config) error) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg, err := config.Parse(fs, args, def)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	stop, err := startProfiles(cfg.Profile)
	if err != nil {
		return err
	}
	defer stop()

	return run(cfg)
}

// startProfiles starts the CPU profile and arranges for the heap profile to be
// written when the returned function is called.
func startProfiles(p config.Profile) (func(), error) {
	var cpu *os.File
	if p.CPU != "" {
		f, err := os.Create(p.CPU)
		if err != nil {
			return nil, errors.Wrap(err, "could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "could not start CPU profile")
		}
		cpu = f
	}

	return func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if p.Mem != "" {
			writeHeapProfile(p.Mem)
		}
	}, nil
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Print("could not create memory profile: ", err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Print("could not write memory profile: ", err)
	}
}

// LoopOptions returns the frame loop options selected by cfg.
func LoopOptions(cfg config.Config) []frameloop.Option {
	var opts []frameloop.Option
	if cfg.Stats.Duration > 0 {
		opts = append(opts, frameloop.WithStats(cfg.Stats.Duration))
	}
	return opts
}

// PrintVersion writes the context version obtained for w.
func PrintVersion(out io.Writer, w *window.Window) {
	major, minor, rev := w.Version()
	fmt.Fprintf(out, "OpenGL - %d.%d.%d\n", major, minor, rev)
}
