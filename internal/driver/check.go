package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"pystyle/internal/diag"
	"pystyle/internal/source"
	"pystyle/internal/trace"
)

// Discover lists the source units designated by path.
// A directory yields its regular files (symlinks to regular files included)
// sorted by name, without recursion. Anything else is a single unit whose
// display path is path verbatim.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Code: diag.IOReadFileError, Err: err}
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	// os.ReadDir уже сортирует по имени
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &LoadError{Path: path, Code: diag.IOReadDirError, Err: err}
	}
	units := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		if isRegularFile(entry, full) {
			units = append(units, full)
		}
	}
	return units, nil
}

func isRegularFile(entry fs.DirEntry, full string) bool {
	mode := entry.Type()
	switch {
	case mode.IsRegular():
		return true
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(full)
		return err == nil && info.Mode().IsRegular()
	}
	return false
}

// Check analyses every unit under path and hands the reports to sink in
// discovery order. The first unit that cannot be read or parsed ends the run;
// reports of the units before it have already been delivered.
func Check(ctx context.Context, path string, opts Options, sink func(*Report) error) error {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "check")
	span.WithExtra("path", path)

	units, err := Discover(path)
	if err != nil {
		span.End("discover failed")
		return err
	}
	for _, unit := range units {
		emit(opts.Progress, Event{File: unit, Stage: StageRead, Status: StatusQueued})
	}

	if opts.Jobs > 1 && len(units) > 1 {
		err = checkUnitsParallel(ctx, units, opts, sink)
	} else {
		err = checkUnitsSequential(ctx, units, opts, sink)
	}
	if err != nil {
		span.WithExtra("error", err.Error()).End("failed")
		return err
	}
	span.End(fmt.Sprintf("%d units", len(units)))
	return nil
}

func checkUnitsSequential(ctx context.Context, units []string, opts Options, sink func(*Report) error) error {
	for _, unit := range units {
		report, err := checkUnit(ctx, unit, opts)
		if err != nil {
			return err
		}
		if err := sink(report); err != nil {
			return err
		}
	}
	return nil
}

// checkUnit loads one file into its own FileSet and analyses it.
func checkUnit(ctx context.Context, path string, opts Options) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		err = &LoadError{Path: path, Code: diag.IOReadFileError, Err: err}
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}

	report, err := AnalyzeFile(ctx, path, fileSet.Get(fileID), opts)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	emit(opts.Progress, Event{
		File:       path,
		Stage:      StageTree,
		Status:     StatusDone,
		Elapsed:    time.Since(start),
		Violations: len(report.Diagnostics),
	})
	return report, nil
}
