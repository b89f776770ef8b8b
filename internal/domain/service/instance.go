package service

import (
	"github.com/rotaduty/slack-duty-bot/internal/domain/contract"
)

type Instance struct {
	Rotation *rotationService
	Notifier *notifierService
}

// NewInstance wires the services. dm may be nil (history disabled) and
// slackClient may be nil for commands that never notify.
func NewInstance(store contract.QueueStore, dm contract.DataManager, slackClient contract.SlackClient, channelID string) *Instance {
	rotationService := newRotation(store, dm)

	return &Instance{
		Rotation: rotationService,
		Notifier: newNotifier(rotationService, slackClient, channelID),
	}
}
