package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"requested", "Pending", " REJECTED ", "accepted", "paid", "Completed"} {
		s, ok := ParseStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, Status(strings.ToUpper(strings.TrimSpace(raw))), s)
	}

	for _, raw := range []string{"", "DONE", "cancelled", "pendingx"} {
		_, ok := ParseStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestLifecycle_CanTransition(t *testing.T) {
	legal := [][2]Status{
		{StatusRequested, StatusPending},
		{StatusRequested, StatusRejected},
		{StatusPending, StatusRejected},
		{StatusPending, StatusAccepted},
		{StatusPending, StatusPaid},
		{StatusAccepted, StatusPaid},
		{StatusPaid, StatusCompleted},
	}
	for _, e := range legal {
		assert.True(t, Lifecycle.CanTransition(e[0], e[1]), "%s -> %s", e[0], e[1])
	}

	illegal := [][2]Status{
		{StatusRequested, StatusCompleted},
		{StatusRequested, StatusPaid},
		{StatusRejected, StatusPending},
		{StatusCompleted, StatusRequested},
		{StatusAccepted, StatusRejected},
		{StatusPaid, StatusRejected},
	}
	for _, e := range illegal {
		assert.False(t, Lifecycle.CanTransition(e[0], e[1]), "%s -> %s", e[0], e[1])
	}
}

func TestLifecycle_TerminalStatesHaveNoTransitions(t *testing.T) {
	for _, s := range AllStatuses {
		if s.IsTerminal() {
			assert.Empty(t, Lifecycle.AvailableTransitions(s, ""), s)
		}
	}
}

func TestLifecycle_AvailableTransitionsByActor(t *testing.T) {
	artist := Lifecycle.AvailableTransitions(StatusRequested, ActorArtist)
	require.Len(t, artist, 2)
	assert.Equal(t, ActionSetPrice, artist[0].Action)
	assert.Equal(t, ActionDeny, artist[1].Action)

	commissioner := Lifecycle.AvailableTransitions(StatusRequested, ActorCommissioner)
	require.Len(t, commissioner, 1)
	assert.Equal(t, ActionDeny, commissioner[0].Action)

	pending := Lifecycle.AvailableTransitions(StatusPending, ActorCommissioner)
	actions := []Action{}
	for _, tr := range pending {
		actions = append(actions, tr.Action)
	}
	assert.ElementsMatch(t, []Action{ActionDeny, ActionAccept}, actions)

	// chỉ payment provider mới chuyển sang PAID
	assert.Empty(t, Lifecycle.AvailableTransitions(StatusAccepted, ActorCommissioner))
	assert.Len(t, Lifecycle.AvailableTransitions(StatusAccepted, ActorPaymentProvider), 1)
}

func TestLifecycle_SourcesAndFind(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusPending, StatusAccepted}, Lifecycle.SourcesFor(ActionPay))
	assert.ElementsMatch(t, []Status{StatusRequested, StatusPending}, Lifecycle.SourcesFor(ActionDeny))

	tr, ok := Lifecycle.Find(ActionComplete, StatusPaid)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, tr.To)

	_, ok = Lifecycle.Find(ActionComplete, StatusAccepted)
	assert.False(t, ok)
}

func TestCommission_ActorOf(t *testing.T) {
	artist, commissioner := uuid.New(), uuid.New()
	c := &Commission{ArtistID: artist, CommissionerID: commissioner}
	assert.Equal(t, ActorArtist, c.ActorOf(artist))
	assert.Equal(t, ActorCommissioner, c.ActorOf(commissioner))
	assert.Equal(t, Actor(""), c.ActorOf(uuid.New()))
}
