package folder_creator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"automation-toolkit/logging"
)

// Form and flag limits.
const (
	MinCount   = 1
	MaxCount   = 10000
	MinPadding = 1
	MaxPadding = 10
	MinStart   = 0
	MaxStart   = 100000
)

// Options configures one folder creation batch.
type Options struct {
	Parent  string `json:"parent"`
	Count   int    `json:"count"`
	Prefix  string `json:"prefix"`
	Suffix  string `json:"suffix"`
	Padding int    `json:"padding"`
	Start   int    `json:"start_index"`
}

// Validate checks the batch limits. The parent folder itself may be
// new, but its own parent must already exist.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Parent) == "" {
		return errors.New("select a parent folder")
	}
	if o.Count < MinCount || o.Count > MaxCount {
		return fmt.Errorf("count must be between %d and %d", MinCount, MaxCount)
	}
	if o.Padding < MinPadding || o.Padding > MaxPadding {
		return fmt.Errorf("padding must be between %d and %d", MinPadding, MaxPadding)
	}
	if o.Start < MinStart || o.Start > MaxStart {
		return fmt.Errorf("start index must be between %d and %d", MinStart, MaxStart)
	}
	if o.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	if o.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	if _, err := os.Stat(o.Parent); err != nil {
		if _, err := os.Stat(filepath.Dir(o.Parent)); err != nil {
			return fmt.Errorf("invalid parent folder: %s", o.Parent)
		}
	}
	return nil
}

// Worker executes one batch on the caller's goroutine; UI callers
// marshal the OnLog and OnProgress callbacks themselves.
type Worker struct {
	opts Options
	log  *zap.Logger

	OnLog      func(line string)
	OnProgress func(done, total int)
}

func NewWorker(opts Options) *Worker {
	return &Worker{opts: opts, log: logging.Tool("folder_creator")}
}

// Run validates and creates the batch, reporting each folder. It
// returns the number of folders now in place.
func (w *Worker) Run(ctx context.Context) (int, error) {
	opts := w.opts
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	w.log.Info("folder creation task started",
		zap.String("parent", opts.Parent),
		zap.Int("count", opts.Count),
		zap.String("prefix", opts.Prefix),
		zap.String("suffix", opts.Suffix))

	w.progress(0, opts.Count)
	w.logLine(fmt.Sprintf("Creating %d folders in %s...", opts.Count, opts.Parent))

	results, err := CreateFolders(opts.Parent, opts.Count, opts.Prefix, opts.Suffix, opts.Padding, opts.Start)
	if err != nil {
		w.log.Error("folder creation failed", zap.Error(err))
		return len(results), err
	}

	for i, r := range results {
		w.progress(i+1, opts.Count)
		if r.Existed {
			w.log.Warn("folder already exists", zap.String("path", r.Path))
			w.logLine("Exists: " + filepath.Base(r.Path))
		} else {
			w.logLine("Created: " + filepath.Base(r.Path))
		}
	}

	w.log.Info("task completed", zap.Int("folders", len(results)))
	return len(results), nil
}

func (w *Worker) logLine(line string) {
	if w.OnLog != nil {
		w.OnLog(line)
	}
}

func (w *Worker) progress(done, total int) {
	if w.OnProgress != nil {
		w.OnProgress(done, total)
	}
}
