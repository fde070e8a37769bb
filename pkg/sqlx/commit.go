package sqlx

import "github.com/campusfm/projectperm/pkg/logx"

// Commit commits tx when err is nil and rolls it back otherwise. The
// returned error is err itself or the commit failure.
func Commit(logger logx.Logger, tx *Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error(failedToRollback, rollbackErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error(failedToCommit, err)
		return err
	}

	logger.Debug(committed)
	return nil
}
