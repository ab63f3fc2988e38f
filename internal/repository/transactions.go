package repository

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	maxTxnAttempts    = 3
	maxCommitAttempts = 3

	transientTransactionError      = "TransientTransactionError"
	unknownTransactionCommitResult = "UnknownTransactionCommitResult"
)

// withTransaction runs fn inside a multi-document transaction and
// guarantees commit-or-abort on every exit path. Transient transaction
// errors are retried a bounded number of times before the failure is
// surfaced; business errors returned by fn abort immediately.
func (r *Repository) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	sess, err := r.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "start session")
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		for attempt := 1; ; attempt++ {
			if err := sess.StartTransaction(); err != nil {
				return errors.Wrap(err, "start transaction")
			}

			err := fn(sc)
			if err == nil {
				err = commitWithRetry(sc, sess)
				if err == nil {
					return nil
				}
			} else {
				_ = sess.AbortTransaction(sc)
			}

			if attempt >= maxTxnAttempts || !hasErrorLabel(err, transientTransactionError) {
				return err
			}
		}
	})
}

func commitWithRetry(sc mongo.SessionContext, sess mongo.Session) error {
	for attempt := 1; ; attempt++ {
		err := sess.CommitTransaction(sc)
		if err == nil {
			return nil
		}
		if attempt >= maxCommitAttempts || !hasErrorLabel(err, unknownTransactionCommitResult) {
			return errors.Wrap(err, "commit transaction")
		}
	}
}

func hasErrorLabel(err error, label string) bool {
	var serverErr mongo.ServerError
	if stderrors.As(err, &serverErr) {
		return serverErr.HasErrorLabel(label)
	}
	return false
}
