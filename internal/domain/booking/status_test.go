package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goldblade/barbershop-api/internal/httperr"
)

func TestStatusTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCompleted))
	assert.Error(t, CanConfirm(StatusCancelled))

	assert.NoError(t, CanComplete(StatusPending))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusCompleted))
	assert.Error(t, CanComplete(StatusCancelled))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))
}

func TestStatusTransitions_ErrorCode(t *testing.T) {
	err := CanConfirm(StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("done"))
	assert.False(t, IsValidStatus(""))
}
