package renamer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"automation-toolkit/fileutil"
	"automation-toolkit/history"
	"automation-toolkit/logging"
)

// Mode selects how new names are produced.
type Mode string

const (
	// ModeNewName replaces names with an indexed pattern.
	ModeNewName Mode = "new_name"
	// ModeKeepName keeps the stem and only wraps it with the affixes.
	ModeKeepName Mode = "keep_name"
)

// Options configures one rename run. The zero value is not useful;
// callers fill it from the form, a preset or CLI flags.
type Options struct {
	Folder  string `json:"folder"`
	Pattern string `json:"pattern"`
	Mode    Mode   `json:"mode"`

	IndexBase   int     `json:"index_base"`
	PadWidth    int     `json:"pad_width"`
	IndexMul    float64 `json:"index_mul"`
	IndexOffset int     `json:"index_offset"`
	Prefix      string  `json:"prefix"`
	Postfix     string  `json:"postfix"`

	ApplySelection bool `json:"apply_selection"`
	SelOffset      int  `json:"sel_offset"`
	SelDivision    int  `json:"sel_division"`

	ResetPerFolder bool `json:"reset_per_folder"`

	// DestRoot empty renames next to each source. Otherwise results land
	// under DestRoot: mirroring the relative tree when PreserveTree is
	// set, flat when not.
	DestRoot     string `json:"dest_root,omitempty"`
	PreserveTree bool   `json:"preserve_tree"`

	Move      bool `json:"move"`
	Overwrite bool `json:"overwrite"`
	DryRun    bool `json:"dry_run"`
	Verbose   bool `json:"verbose"`
}

// Pair is one scheduled rename: a source file and its assigned index.
type Pair struct {
	Src   string
	Index int
}

// Summary reports a finished run. BatchID is empty when nothing was
// journaled (dry runs, or no journal attached).
type Summary struct {
	Processed int
	Total     int
	BatchID   string
}

// BuildPlan scans opts.Folder recursively and assigns every matching file
// its index: continuous over the natural scan order, or restarting per
// folder when ResetPerFolder is set (groups ordered case-insensitively by
// their relative path, natural order inside). The selection rule then
// keeps only indexes i with (i-SelOffset) % SelDivision == 0.
func BuildPlan(opts Options) ([]Pair, error) {
	info, err := os.Stat(opts.Folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid folder: %s", opts.Folder)
	}

	pattern := strings.TrimSpace(opts.Pattern)
	if pattern == "" {
		pattern = "*"
	}
	paths, err := fileutil.ListFiles(opts.Folder, pattern, true)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	if !opts.ResetPerFolder {
		for i, p := range paths {
			pairs = append(pairs, Pair{Src: p, Index: i + opts.IndexBase})
		}
	} else {
		groups := make(map[string][]string)
		for _, p := range paths {
			key := relParent(opts.Folder, p)
			groups[key] = append(groups[key], p)
		}
		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return strings.ToLower(keys[i]) < strings.ToLower(keys[j])
		})
		for _, k := range keys {
			group := groups[k]
			sort.SliceStable(group, func(i, j int) bool {
				return fileutil.NaturalLess(filepath.Base(group[i]), filepath.Base(group[j]))
			})
			for i, p := range group {
				pairs = append(pairs, Pair{Src: p, Index: i + opts.IndexBase})
			}
		}
	}

	if opts.ApplySelection && opts.SelDivision > 0 {
		kept := make([]Pair, 0, len(pairs))
		for _, pr := range pairs {
			if (pr.Index-opts.SelOffset)%opts.SelDivision == 0 {
				kept = append(kept, pr)
			}
		}
		pairs = kept
	}
	return pairs, nil
}

// Worker executes one rename run on the caller's goroutine. OnLog and
// OnProgress fire inline as files are processed; UI callers marshal them
// onto the event loop themselves.
type Worker struct {
	opts    Options
	journal *history.Store // nil: no undo journal
	log     *zap.Logger

	OnLog      func(line string)
	OnProgress func(done, total int)
}

// NewWorker prepares a run of opts. journal may be nil.
func NewWorker(opts Options, journal *history.Store) *Worker {
	return &Worker{
		opts:    opts,
		journal: journal,
		log:     logging.Tool("renamer"),
	}
}

// Run scans, renames and journals. It stops at the first write error;
// ctx is checked between files so a run can be cancelled.
func (w *Worker) Run(ctx context.Context) (Summary, error) {
	opts := w.opts
	w.log.Info("rename task started",
		zap.String("folder", opts.Folder),
		zap.String("pattern", opts.Pattern),
		zap.String("mode", string(opts.Mode)))

	pairs, err := BuildPlan(opts)
	if err != nil {
		w.log.Error("scan failed", zap.Error(err))
		return Summary{}, err
	}
	if len(pairs) == 0 {
		w.log.Warn("no files to process", zap.String("pattern", opts.Pattern))
		return Summary{}, nil
	}

	total := len(pairs)
	w.progress(0, total)

	batchID := ""
	if !opts.DryRun && w.journal != nil {
		batchID = uuid.NewString()
	}
	action := "copy"
	if opts.Move {
		action = "move"
	}
	w.log.Info("processing files",
		zap.Int("count", total),
		zap.Bool("move", opts.Move),
		zap.Bool("overwrite", opts.Overwrite),
		zap.Bool("dry_run", opts.DryRun))

	done := 0
	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			w.log.Warn("rename task cancelled", zap.Int("done", done), zap.Int("total", total))
			return Summary{Processed: done, Total: total, BatchID: batchID}, ctx.Err()
		default:
		}

		newName := w.newNameFor(pair)
		dst := w.destFor(pair.Src, newName)

		if opts.Verbose || opts.DryRun {
			w.emitLine(pair.Src, dst, newName)
		}

		skipped, err := fileutil.EnsureWrite(pair.Src, dst, opts.Move, opts.Overwrite, opts.DryRun)
		if err != nil {
			w.log.Error("write failed", zap.String("src", pair.Src), zap.String("dst", dst), zap.Error(err))
			return Summary{Processed: done, Total: total, BatchID: batchID},
				fmt.Errorf("%s -> %s: %w", filepath.Base(pair.Src), newName, err)
		}
		if !skipped && !opts.DryRun && batchID != "" {
			if err := w.journal.Record(batchID, "renamer", action, pair.Src, dst); err != nil {
				w.log.Warn("journal write failed", zap.Error(err))
			}
		}

		done++
		w.progress(done, total)
	}

	w.log.Info("task completed", zap.Int("processed", done), zap.Int("total", total))
	return Summary{Processed: done, Total: total, BatchID: batchID}, nil
}

func (w *Worker) newNameFor(pair Pair) string {
	return nameFor(w.opts, pair)
}

// nameFor produces the scheduled name for one pair under opts.
func nameFor(opts Options, pair Pair) string {
	ext := filepath.Ext(pair.Src)
	if opts.Mode == ModeKeepName {
		stem := strings.TrimSuffix(filepath.Base(pair.Src), ext)
		return BuildKeepName(stem, ext, opts.Prefix, opts.Postfix)
	}
	return BuildNewName(pair.Index, ext, opts.PadWidth, opts.IndexMul, opts.IndexOffset, opts.Prefix, opts.Postfix)
}

func (w *Worker) destFor(src, newName string) string {
	if w.opts.DestRoot == "" {
		return filepath.Join(filepath.Dir(src), newName)
	}
	if w.opts.PreserveTree {
		return filepath.Join(w.opts.DestRoot, relParent(w.opts.Folder, src), newName)
	}
	return filepath.Join(w.opts.DestRoot, newName)
}

// emitLine reports one planned operation in the "[action] dir | old ->
// new" form shown in the log view.
func (w *Worker) emitLine(src, dst, newName string) {
	relDir := filepath.ToSlash(relParent(w.opts.Folder, src))
	destRel := newName
	if relDir != "." {
		destRel = relDir + "/" + newName
	}

	tag := "copy"
	if w.opts.Move {
		tag = "move"
	}
	if _, err := os.Stat(dst); err == nil {
		if w.opts.Overwrite {
			tag = "overwrite"
		} else {
			tag = "skip"
		}
	}
	w.logLine(fmt.Sprintf("[%s] %s | %s -> %s", tag, relDir, filepath.Base(src), destRel))
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

// relParent returns the directory of path relative to root, "." for
// direct children.
func relParent(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return "."
	}
	return rel
}
