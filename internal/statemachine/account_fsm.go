package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/scolarite-api/internal/models"
)

// Account events
const (
	EventEnable  = "enable"
	EventDisable = "disable"
)

// AccountFSM wraps a user account with its On/Off state machine
type AccountFSM struct {
	user *models.User
	fsm  *fsm.FSM
}

// NewAccountFSM creates a new account state machine
func NewAccountFSM(user *models.User) *AccountFSM {
	status := user.Status
	if status == "" {
		status = models.StatusOn
	}

	afsm := &AccountFSM{user: user}
	afsm.fsm = fsm.NewFSM(
		status,
		fsm.Events{
			// On → Off
			{Name: EventDisable, Src: []string{models.StatusOn}, Dst: models.StatusOff},

			// Off → On
			{Name: EventEnable, Src: []string{models.StatusOff}, Dst: models.StatusOn},
		},
		fsm.Callbacks{},
	)
	return afsm
}

// Enable switches the account on
func (a *AccountFSM) Enable(ctx context.Context) error {
	return a.fire(ctx, EventEnable)
}

// Disable switches the account off
func (a *AccountFSM) Disable(ctx context.Context) error {
	return a.fire(ctx, EventDisable)
}

// Toggle flips the account to the opposite status
func (a *AccountFSM) Toggle(ctx context.Context) error {
	if a.fsm.Current() == models.StatusOn {
		return a.Disable(ctx)
	}
	return a.Enable(ctx)
}

// Current returns the current status
func (a *AccountFSM) Current() string {
	return a.fsm.Current()
}

func (a *AccountFSM) fire(ctx context.Context, event string) error {
	if !a.fsm.Can(event) {
		return fmt.Errorf("account cannot %s in current state: %s", event, a.fsm.Current())
	}
	if err := a.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to %s account: %w", event, err)
	}
	a.user.Status = a.fsm.Current()
	return nil
}
