package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Persistent(t *testing.T) {
	tests := []struct {
		err        AppError
		persistent bool
	}{
		{ErrEntityNotFound, false},
		{ErrRequiredFieldsMissing, false},
		{ErrConcurrentUpdate, true},
		{ErrOperationPreventedByReferences, true},
		{ErrDeleteOwnAccount, true},
		{ErrModifyLockedUser, true},
		{ErrInvalidCredentials, false},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode()+"/"+tt.err.Message(), func(t *testing.T) {
			assert.Equal(t, tt.persistent, tt.err.Persistent())
		})
	}
}

func TestBaseError_IsSurvivesWrapping(t *testing.T) {
	wrapped := ErrConcurrentUpdate.WrapMessage("save order 12")

	assert.ErrorIs(t, wrapped, ErrConcurrentUpdate)
	assert.NotErrorIs(t, wrapped, ErrEntityNotFound)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestBaseError_UserFriendlyMessagesAreDistinct(t *testing.T) {
	err := ErrDeleteOwnAccount.WrapMessage("delete user")

	assert.ErrorIs(t, err, ErrDeleteOwnAccount)
	assert.NotErrorIs(t, err, ErrModifyLockedUser)
	assert.Equal(t, "USER_FRIENDLY_DATA", ErrDeleteOwnAccount.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrRequiredFieldsMissing.WithDetails("customer.fullName")

	assert.Equal(t, "customer.fullName", detailed.Details())
	assert.Empty(t, ErrRequiredFieldsMissing.Details())
	assert.ErrorIs(t, detailed, ErrRequiredFieldsMissing)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := pkgerrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "save product")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.False(t, err.Persistent())
}
