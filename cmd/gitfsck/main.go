// Command gitfsck checks the consistency of loose objects in an object
// directory and optionally walks the reference graph from the named
// objects.
//
//	gitfsck [--strict] [--walk] [--config CFG] path/to/objects [hash...]
//
// With no hashes, every loose object in the directory is checked.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // logging backend

	"github.com/ahawks/git/check"
	"github.com/ahawks/git/diag"
	"github.com/ahawks/git/object"
	"github.com/ahawks/git/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(2)
	}
}

type runFlags struct {
	strict     bool
	walk       bool
	verbosity  int
	config     string
	configFile string
	grafts     string
}

func newRootCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:           "gitfsck <object-dir> [hash...]",
		Short:         "check object consistency in a loose object store",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(flags, args[0], args[1:])
		},
	}
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "promote warnings to errors")
	cmd.Flags().BoolVar(&flags.walk, "walk", false, "walk references from the named objects")
	cmd.Flags().CountVarP(&flags.verbosity, "verbose", "v", "increase log verbosity")
	cmd.Flags().StringVar(&flags.config, "config", "", "compact configuration string (id=severity,... and skiplist=path)")
	cmd.Flags().StringVar(&flags.configFile, "config-file", "", "JSON configuration file")
	cmd.Flags().StringVar(&flags.grafts, "grafts", "", "graft file overriding commit parents")
	return cmd
}

func run(flags *runFlags, dir string, hashes []string) error {
	commonlog.Configure(flags.verbosity, nil)
	logger := newLogger(flags.verbosity)
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	objects := store.NewLoose(dir, store.WithLogger(logger))
	if flags.grafts != "" {
		if err := objects.LoadGrafts(flags.grafts); err != nil {
			return err
		}
	}

	errCount := 0
	report := func(obj *object.Object, severity diag.Severity, message string) int {
		name := "unknown"
		if obj != nil {
			name = obj.ID.String()
		}
		if severity == diag.Error {
			fmt.Fprintf(os.Stderr, "%s in object %s: %s\n", color.RedString("error"), name, message)
			return 1
		}
		fmt.Fprintf(os.Stderr, "%s in object %s: %s\n", color.YellowString("warning"), name, message)
		return 0
	}

	pending := []object.ID{}
	seen := map[object.ID]bool{}
	enqueue := func(id object.ID) {
		if !seen[id] {
			seen[id] = true
			pending = append(pending, id)
		}
	}

	walk := func(obj *object.Object, expect object.Kind) int {
		if obj == nil {
			fmt.Fprintf(os.Stderr, "%s: reference to object of conflicting kind (expected %s)\n",
				color.RedString("error"), expect)
			return 1
		}
		if flags.walk {
			enqueue(obj.ID)
		}
		return 0
	}

	checker := check.New(objects,
		check.WithStrict(flags.strict),
		check.WithLogger(logger),
		check.WithReport(report),
		check.WithWalk(walk),
	)
	if flags.configFile != "" {
		if err := checker.ApplyConfigFile(flags.configFile); err != nil {
			return err
		}
	}
	if flags.config != "" {
		if err := checker.ApplyConfig(flags.config); err != nil {
			return err
		}
	}

	if len(hashes) == 0 {
		var err error
		hashes, err = allLooseHashes(dir)
		if err != nil {
			return err
		}
	}
	for _, h := range hashes {
		id, err := object.ParseID(h)
		if err != nil {
			return err
		}
		enqueue(id)
	}

	for len(pending) > 0 {
		id := pending[0]
		pending = pending[1:]

		handle, err := objects.Lookup(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
			errCount++
			continue
		}
		if err := parseHandle(objects, handle); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
			errCount++
			continue
		}
		if n := checker.Object(handle, nil); n > 0 {
			errCount += n
		} else if n < 0 {
			errCount++
		}
		if flags.walk {
			if n := checker.Walk(handle); n > 0 {
				errCount += n
			} else if n < 0 {
				errCount++
			}
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%d error(s) found", errCount)
	}
	return nil
}

func parseHandle(objects *store.Loose, handle object.Handle) error {
	switch v := handle.(type) {
	case *object.Tree:
		return objects.ParseTree(v)
	case *object.Commit:
		return objects.ParseCommit(v)
	case *object.Tag:
		return objects.ParseTag(v)
	default:
		return nil
	}
}

// allLooseHashes collects every well-formed loose object filename under
// the fan-out directory.
func allLooseHashes(dir string) ([]string, error) {
	var hashes []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		fan := filepath.Dir(rel)
		name := filepath.Base(rel)
		if len(fan) == 2 && len(name) == object.HexLen-2 {
			hashes = append(hashes, fan+name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gitfsck: scanning %s: %w", dir, err)
	}
	return hashes, nil
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
