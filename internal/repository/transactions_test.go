package repository

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestHasErrorLabel(t *testing.T) {
	transient := mongo.CommandError{
		Code:   112,
		Name:   "WriteConflict",
		Labels: []string{transientTransactionError},
	}

	assert.True(t, hasErrorLabel(transient, transientTransactionError))
	assert.False(t, hasErrorLabel(transient, unknownTransactionCommitResult))

	// labels survive infra-layer wrapping
	wrapped := errors.Wrap(transient, "reserve stock")
	assert.True(t, hasErrorLabel(wrapped, transientTransactionError))

	assert.False(t, hasErrorLabel(errors.New("plain"), transientTransactionError))
	assert.False(t, hasErrorLabel(nil, transientTransactionError))
}
