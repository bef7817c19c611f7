package renamer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"automation-toolkit/history"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func listTree(t *testing.T, root string) []string {
	t.Helper()
	var rels []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rels = append(rels, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(rels)
	return rels
}

func openJournal(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBuildPlanContinuous(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b_dir/clip_10.bmp": "",
		"b_dir/clip_2.bmp":  "",
		"frame_3.bmp":       "",
		"frame_1.bmp":       "",
		"note.txt":          "",
	})

	pairs, err := BuildPlan(Options{Folder: root, Pattern: "*.bmp", IndexBase: 1})
	require.NoError(t, err)

	require.Len(t, pairs, 4)
	// natural order over base names, one continuous index sequence
	require.Equal(t, "clip_2.bmp", filepath.Base(pairs[0].Src))
	require.Equal(t, "clip_10.bmp", filepath.Base(pairs[1].Src))
	require.Equal(t, "frame_1.bmp", filepath.Base(pairs[2].Src))
	require.Equal(t, "frame_3.bmp", filepath.Base(pairs[3].Src))
	for i, pr := range pairs {
		require.Equal(t, i+1, pr.Index)
	}
}

func TestBuildPlanResetPerFolder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"frame_1.bmp":       "",
		"frame_3.bmp":       "",
		"B_dir/clip_2.bmp":  "",
		"B_dir/clip_10.bmp": "",
		"a_dir/shot_1.bmp":  "",
	})

	pairs, err := BuildPlan(Options{Folder: root, Pattern: "*.bmp", IndexBase: 1, ResetPerFolder: true})
	require.NoError(t, err)
	require.Len(t, pairs, 5)

	type want struct {
		name  string
		index int
	}
	// groups ordered case-insensitively: ".", "a_dir", "B_dir"
	wants := []want{
		{"frame_1.bmp", 1},
		{"frame_3.bmp", 2},
		{"shot_1.bmp", 1},
		{"clip_2.bmp", 1},
		{"clip_10.bmp", 2},
	}
	for i, wnt := range wants {
		require.Equal(t, wnt.name, filepath.Base(pairs[i].Src), "position %d", i)
		require.Equal(t, wnt.index, pairs[i].Index, "position %d", i)
	}
}

func TestBuildPlanSelection(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"f_1.bmp": "", "f_2.bmp": "", "f_3.bmp": "", "f_4.bmp": "", "f_5.bmp": "",
	})

	pairs, err := BuildPlan(Options{
		Folder: root, Pattern: "*.bmp", IndexBase: 1,
		ApplySelection: true, SelOffset: 0, SelDivision: 2,
	})
	require.NoError(t, err)

	// (i-0) % 2 == 0 keeps the even indexes
	require.Len(t, pairs, 2)
	require.Equal(t, 2, pairs[0].Index)
	require.Equal(t, 4, pairs[1].Index)

	// division 0 disables the filter even when enabled
	pairs, err = BuildPlan(Options{
		Folder: root, Pattern: "*.bmp", IndexBase: 1,
		ApplySelection: true, SelDivision: 0,
	})
	require.NoError(t, err)
	require.Len(t, pairs, 5)
}

func TestBuildPlanInvalidFolder(t *testing.T) {
	_, err := BuildPlan(Options{Folder: filepath.Join(t.TempDir(), "missing"), Pattern: "*"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid folder")
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"sub/clip_1.bmp": "a",
		"frame_1.bmp":    "b",
	})
	before := listTree(t, root)

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
		IndexBase: 1, PadWidth: 4, IndexMul: 1.0, Prefix: "frame",
		DryRun: true,
	}, nil)

	var lines []string
	w.OnLog = func(line string) { lines = append(lines, line) }
	var progress [][2]int
	w.OnProgress = func(done, total int) { progress = append(progress, [2]int{done, total}) }

	sum, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sum.Processed)
	require.Equal(t, 2, sum.Total)
	require.Empty(t, sum.BatchID)

	require.Equal(t, before, listTree(t, root))
	require.Equal(t, []string{
		"[copy] sub | clip_1.bmp -> sub/frame_0001.bmp",
		"[copy] . | frame_1.bmp -> frame_0002.bmp",
	}, lines)
	require.Equal(t, [2]int{0, 2}, progress[0])
	require.Equal(t, [2]int{2, 2}, progress[len(progress)-1])
}

func TestRunCopyToFolderFlat(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/clip_1.bmp": "one",
		"clip_2.bmp":   "two",
	})
	journal := openJournal(t)

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
		IndexBase: 1, PadWidth: 3, IndexMul: 1.0, Prefix: "out",
		DestRoot: dest,
	}, journal)

	sum, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sum.Processed)
	require.NotEmpty(t, sum.BatchID)

	// sources intact, results flat under dest
	require.Equal(t, []string{"a/clip_1.bmp", "clip_2.bmp"}, listTree(t, root))
	require.Equal(t, []string{"out_001.bmp", "out_002.bmp"}, listTree(t, dest))

	id, ops, err := journal.LastBatch()
	require.NoError(t, err)
	require.Equal(t, sum.BatchID, id)
	require.Len(t, ops, 2)
	require.Equal(t, "copy", ops[0].Action)
}

func TestRunPreserveTree(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/clip_1.bmp": "one",
		"clip_2.bmp":   "two",
	})

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
		IndexBase: 1, PadWidth: 3, IndexMul: 1.0, Prefix: "out",
		DestRoot: dest, PreserveTree: true,
	}, nil)

	_, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a/out_001.bmp", "out_002.bmp"}, listTree(t, dest))
}

func TestRunMoveInPlace(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"sub/clip_2.bmp": "x",
		"clip_1.bmp":     "y",
	})
	journal := openJournal(t)

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
		IndexBase: 1, PadWidth: 2, IndexMul: 1.0, Prefix: "f",
		Move: true,
	}, journal)

	sum, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sum.Processed)

	require.Equal(t, []string{"f_01.bmp", "sub/f_02.bmp"}, listTree(t, root))

	_, ops, err := journal.LastBatch()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, "move", ops[0].Action)
}

func TestRunSkipAndOverwrite(t *testing.T) {
	t.Run("existing destination skipped", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"clip_1.bmp": "new",
			"f_01.bmp":   "old", // already carries the target name
		})
		journal := openJournal(t)

		w := NewWorker(Options{
			Folder: root, Pattern: "clip_*.bmp", Mode: ModeNewName,
			IndexBase: 1, PadWidth: 2, IndexMul: 1.0, Prefix: "f",
			Verbose: true,
		}, journal)
		var lines []string
		w.OnLog = func(line string) { lines = append(lines, line) }

		sum, err := w.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, sum.Processed)

		data, _ := os.ReadFile(filepath.Join(root, "f_01.bmp"))
		require.Equal(t, "old", string(data))
		require.Equal(t, []string{"[skip] . | clip_1.bmp -> f_01.bmp"}, lines)

		// skipped writes are not journaled
		_, _, err = journal.LastBatch()
		require.ErrorIs(t, err, history.ErrNoBatches)
	})

	t.Run("overwrite replaces", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"clip_1.bmp": "new",
			"f_01.bmp":   "old",
		})

		w := NewWorker(Options{
			Folder: root, Pattern: "clip_*.bmp", Mode: ModeNewName,
			IndexBase: 1, PadWidth: 2, IndexMul: 1.0, Prefix: "f",
			Overwrite: true, Verbose: true,
		}, nil)
		var lines []string
		w.OnLog = func(line string) { lines = append(lines, line) }

		_, err := w.Run(context.Background())
		require.NoError(t, err)

		data, _ := os.ReadFile(filepath.Join(root, "f_01.bmp"))
		require.Equal(t, "new", string(data))
		require.Equal(t, []string{"[overwrite] . | clip_1.bmp -> f_01.bmp"}, lines)
	})
}

func TestRunKeepNameMode(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	writeTree(t, root, map[string]string{"shot_a.bmp": "x"})

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeKeepName,
		Prefix: "pre", Postfix: "post",
		DestRoot: dest,
	}, nil)

	_, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"pre_shot_a_post.bmp"}, listTree(t, dest))
}

func TestRunCancelled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"clip_1.bmp": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWorker(Options{
		Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
		IndexBase: 1, IndexMul: 1.0, Prefix: "f", Move: true,
	}, nil)

	sum, err := w.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, sum.Processed)
	require.Equal(t, []string{"clip_1.bmp"}, listTree(t, root))
}

func TestRunNothingMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"note.txt": "x"})

	w := NewWorker(Options{Folder: root, Pattern: "*.bmp", Mode: ModeNewName, IndexBase: 1, IndexMul: 1.0}, nil)
	sum, err := w.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)
}

func TestUndoLastBatch(t *testing.T) {
	t.Run("copies are deleted", func(t *testing.T) {
		root := t.TempDir()
		dest := t.TempDir()
		writeTree(t, root, map[string]string{"clip_1.bmp": "x"})
		journal := openJournal(t)

		w := NewWorker(Options{
			Folder: root, Pattern: "*.bmp", Mode: ModeNewName,
			IndexBase: 1, PadWidth: 2, IndexMul: 1.0, Prefix: "f",
			DestRoot: dest,
		}, journal)
		_, err := w.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"f_01.bmp"}, listTree(t, dest))

		undone, err := UndoLastBatch(journal)
		require.NoError(t, err)
		require.Equal(t, 1, undone)
		require.Empty(t, listTree(t, dest))

		_, _, err = journal.LastBatch()
		require.ErrorIs(t, err, history.ErrNoBatches)
	})

	t.Run("moves go back", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"clip_1.bmp": "x"})
		journal := openJournal(t)

		w := NewWorker(Options{
			Folder: root, Pattern: "clip_*.bmp", Mode: ModeNewName,
			IndexBase: 1, PadWidth: 2, IndexMul: 1.0, Prefix: "f",
			Move: true,
		}, journal)
		_, err := w.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"f_01.bmp"}, listTree(t, root))

		undone, err := UndoLastBatch(journal)
		require.NoError(t, err)
		require.Equal(t, 1, undone)
		require.Equal(t, []string{"clip_1.bmp"}, listTree(t, root))
	})

	t.Run("empty journal", func(t *testing.T) {
		journal := openJournal(t)
		_, err := UndoLastBatch(journal)
		require.ErrorIs(t, err, history.ErrNoBatches)
	})
}
