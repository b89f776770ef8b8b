package service

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/rotaduty/slack-duty-bot/internal/domain"
	"github.com/rotaduty/slack-duty-bot/internal/domain/contract"
	"github.com/rotaduty/slack-duty-bot/internal/pkg/logx"
)

type notifierService struct {
	rotation    *rotationService
	slackClient contract.SlackClient
	channelID   string
}

func newNotifier(rotation *rotationService, slackClient contract.SlackClient, channelID string) *notifierService {
	return &notifierService{
		rotation:    rotation,
		slackClient: slackClient,
		channelID:   channelID,
	}
}

// Notify resolves the current participant and posts the duty reminder to
// the configured channel. Exactly one message is sent; there are no
// retries. Mentions render as mentions (link names enabled) and link
// previews are suppressed.
func (s *notifierService) Notify(ctx context.Context) error {
	if s.channelID == "" {
		return fmt.Errorf("%w: channel ID is required", domain.ErrMissingCredential)
	}

	current, err := s.rotation.CurrentParticipant()
	if err != nil {
		return err
	}

	message := fmt.Sprintf("🎯 *Duty Reminder*\n\n%s is on duty this week.\n\nEdit the queue file to change the rotation order.", current.Mention())

	_, _, err = s.slackClient.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionLinkNames(true),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	logx.Info("notification sent", "channel", s.channelID, "participant", current.String())
	return nil
}
