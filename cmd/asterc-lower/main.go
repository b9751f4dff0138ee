// asterc-lower is a backend inspection tool: it builds a compilation unit
// from a YAML fixture, runs the backend lowering pipeline over it, and
// prints the IR before and after. With --watch it re-runs whenever the
// fixture changes.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/config"
	"github.com/aster-lang/aster/internal/lower/staticcalls"
	"github.com/aster-lang/aster/internal/pipeline"
)

var (
	configPath string
	watch      bool
	noColor    bool
)

func main() {
	root := &cobra.Command{
		Use:   "asterc-lower <unit.yaml>",
		Short: "Run the Aster backend lowering pipeline over a unit fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&configPath, "config", "", "backend config file (YAML)")
	root.Flags().BoolVar(&watch, "watch", false, "re-run when the fixture changes")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored section headers")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := lowerOnce(path, cfg); err != nil {
		if !watch {
			return err
		}
		log.Printf("lower: %v", err)
	}
	if !watch {
		return nil
	}
	return watchLoop(path, cfg)
}

func lowerOnce(path string, cfg *config.Config) error {
	unit, err := bir.DecodeUnitFile(path)
	if err != nil {
		return err
	}

	p := pipeline.New(staticcalls.NewStage(staticcalls.NewBackendContext(unit)))
	enabled, err := cfg.StaticCallsEnabled()
	if err != nil {
		return err
	}
	if !enabled {
		log.Printf("target %s predates static dispatch; skipping %s", cfg.TargetVersion, staticcalls.StageName)
		p.Disable(staticcalls.StageName)
	}
	for _, name := range cfg.DisabledStages {
		p.Disable(name)
	}

	printSection("before lowering")
	fmt.Print(unit.Dump())

	if err := p.Run(unit); err != nil {
		return err
	}

	printSection("after lowering")
	fmt.Print(unit.Dump())
	return nil
}

func printSection(title string) {
	if !noColor && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("\x1b[1;36m== %s ==\x1b[0m\n", title)
		return
	}
	fmt.Printf("== %s ==\n", title)
}

func watchLoop(path string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	log.Printf("watching %s", path)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := lowerOnce(path, cfg); err != nil {
				log.Printf("lower: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
