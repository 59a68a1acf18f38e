package statemachine

import (
	"context"
	"testing"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountFSM_Toggle(t *testing.T) {
	user := &models.User{Status: models.StatusOn}
	a := NewAccountFSM(user)

	require.NoError(t, a.Toggle(context.Background()))
	assert.Equal(t, models.StatusOff, user.Status)

	require.NoError(t, a.Toggle(context.Background()))
	assert.Equal(t, models.StatusOn, user.Status)
}

func TestAccountFSM_InvalidTransition(t *testing.T) {
	user := &models.User{Status: models.StatusOff}
	a := NewAccountFSM(user)

	err := a.Disable(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.StatusOff, user.Status)
}

func TestAccountFSM_EmptyStatusStartsOn(t *testing.T) {
	user := &models.User{}
	a := NewAccountFSM(user)

	assert.Equal(t, models.StatusOn, a.Current())
	require.NoError(t, a.Disable(context.Background()))
	assert.Equal(t, models.StatusOff, user.Status)
}
