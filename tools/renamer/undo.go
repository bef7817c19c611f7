package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"automation-toolkit/fileutil"
	"automation-toolkit/history"
	"automation-toolkit/logging"
)

// UndoLastBatch reverses the newest journaled batch in reverse operation
// order: moved files go back to their source path, copies are deleted.
// The batch is dropped from the journal when every step succeeded.
// history.ErrNoBatches when there is nothing to undo.
func UndoLastBatch(journal *history.Store) (int, error) {
	batchID, ops, err := journal.LastBatch()
	if err != nil {
		return 0, err
	}

	log := logging.Tool("renamer")
	log.Info("undoing batch", zap.String("batch", batchID), zap.Int("ops", len(ops)))

	undone := 0
	var firstErr error
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		switch op.Action {
		case "move":
			// move back, never clobbering a file that reappeared at src
			skipped, err := fileutil.EnsureWrite(op.Dst, op.Src, true, false, false)
			if err != nil {
				log.Error("undo move failed", zap.String("dst", op.Dst), zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if skipped {
				log.Warn("undo skipped, source path occupied", zap.String("src", op.Src))
				continue
			}
		case "copy":
			if err := os.Remove(op.Dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Error("undo copy failed", zap.String("dst", op.Dst), zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		default:
			continue
		}
		undone++
	}

	if firstErr != nil {
		return undone, fmt.Errorf("undo batch %s: %w", batchID, firstErr)
	}
	if err := journal.DeleteBatch(batchID); err != nil {
		return undone, err
	}
	log.Info("batch undone", zap.String("batch", batchID), zap.Int("undone", undone))
	return undone, nil
}
