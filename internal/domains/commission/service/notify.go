package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/commission/model"
	"artisthub-backend/internal/shared"
	"artisthub-backend/pkg/metrics"
)

// notificationFor maps the destination status to the notification kind and
// its recipients. actor is only used for REJECTED ("" = unknown, notify both).
func notificationFor(to model.Status, actor model.Actor) (shared.NotificationKind, []shared.Party, bool) {
	switch to {
	case model.StatusRequested:
		return shared.NotifyRequested, []shared.Party{shared.PartyArtist}, true
	case model.StatusPending:
		return shared.NotifyPriceSet, []shared.Party{shared.PartyCommissioner}, true
	case model.StatusAccepted:
		return shared.NotifyAccepted, []shared.Party{shared.PartyArtist}, true
	case model.StatusRejected:
		switch actor {
		case model.ActorArtist:
			return shared.NotifyDenied, []shared.Party{shared.PartyCommissioner}, true
		case model.ActorCommissioner:
			return shared.NotifyDenied, []shared.Party{shared.PartyArtist}, true
		}
		return shared.NotifyDenied, []shared.Party{shared.PartyArtist, shared.PartyCommissioner}, true
	case model.StatusPaid:
		return shared.NotifyPaid, []shared.Party{shared.PartyArtist, shared.PartyCommissioner}, true
	case model.StatusCompleted:
		return shared.NotifyCompleted, []shared.Party{shared.PartyCommissioner}, true
	}
	return "", nil, false
}

// notify tra cứu hai bên rồi gửi. Lỗi chỉ log: transition đã được ghi.
func (s *commissionService) notify(ctx context.Context, c *model.Commission, actor model.Actor) {
	artist, err := s.users.GetBasicInfo(ctx, c.ArtistID)
	if err != nil {
		log.Warn().Err(err).Str("commission_id", c.ID.String()).Msg("Skip notification: artist lookup failed")
		return
	}
	commissioner, err := s.users.GetBasicInfo(ctx, c.CommissionerID)
	if err != nil {
		log.Warn().Err(err).Str("commission_id", c.ID.String()).Msg("Skip notification: commissioner lookup failed")
		return
	}
	s.notifyWith(ctx, c, c.Status, actor, artist, commissioner)
}

func (s *commissionService) notifyWith(
	ctx context.Context,
	c *model.Commission,
	to model.Status,
	actor model.Actor,
	artist, commissioner *shared.UserBasicInfo,
) {
	if s.notifier == nil {
		return
	}
	kind, recipients, ok := notificationFor(to, actor)
	if !ok {
		return
	}

	payload := shared.CommissionNotificationPayload{
		Kind:         kind,
		CommissionID: c.ID.String(),
		Title:        c.Title,
		Artist:       *artist,
		Commissioner: *commissioner,
		Recipients:   recipients,
	}
	if c.Price != nil {
		payload.Price = c.Price.StringFixed(2)
	}

	err := s.notifier.Notify(ctx, payload)
	metrics.RecordNotification(string(kind), err == nil)
	if err != nil {
		log.Error().
			Err(err).
			Str("commission_id", c.ID.String()).
			Str("kind", string(kind)).
			Msg("Failed to dispatch commission notification")
	}
}

func (s *commissionService) recordTransition(from, to model.Status) {
	metrics.RecordTransition(string(from), string(to))
}
