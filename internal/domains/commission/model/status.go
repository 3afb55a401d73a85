package model

import (
	"strings"
)

// =====================================================
// COMMISSION STATUS
// =====================================================

type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusPending   Status = "PENDING"
	StatusRejected  Status = "REJECTED"
	StatusAccepted  Status = "ACCEPTED"
	StatusPaid      Status = "PAID"
	StatusCompleted Status = "COMPLETED"
)

// AllStatuses theo thứ tự lifecycle
var AllStatuses = []Status{
	StatusRequested,
	StatusPending,
	StatusRejected,
	StatusAccepted,
	StatusPaid,
	StatusCompleted,
}

// StatusNames dùng cho validation rule (OneOfFold)
func StatusNames() []string {
	names := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus nhận input không phân biệt hoa thường, trả về dạng uppercase
func ParseStatus(raw string) (Status, bool) {
	candidate := Status(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range AllStatuses {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// =====================================================
// STATE MACHINE
// =====================================================

// Actor là bên thực hiện transition
type Actor string

const (
	ActorArtist       Actor = "ARTIST"
	ActorCommissioner Actor = "COMMISSIONER"
	// ActorPaymentProvider: chỉ webhook đã verify mới được chuyển sang PAID
	ActorPaymentProvider Actor = "PAYMENT_PROVIDER"
)

type Action string

const (
	ActionSetPrice Action = "set_price"
	ActionAccept   Action = "accept"
	ActionDeny     Action = "deny"
	ActionPay      Action = "pay"
	ActionComplete Action = "complete"
)

type Transition struct {
	Action Action  `json:"action"`
	From   Status  `json:"from"`
	To     Status  `json:"to"`
	Actors []Actor `json:"actors"`
}

func (t Transition) AllowedFor(actor Actor) bool {
	for _, a := range t.Actors {
		if a == actor {
			return true
		}
	}
	return false
}

// StateMachine is stateless, just used for transition lookups.
type StateMachine struct {
	Transitions []Transition
}

// Lifecycle: REQUESTED -> PENDING -> (ACCEPTED) -> PAID -> COMPLETED,
// REJECTED reachable from REQUESTED or PENDING.
var Lifecycle = &StateMachine{
	Transitions: []Transition{
		{Action: ActionSetPrice, From: StatusRequested, To: StatusPending, Actors: []Actor{ActorArtist}},
		{Action: ActionDeny, From: StatusRequested, To: StatusRejected, Actors: []Actor{ActorArtist, ActorCommissioner}},
		{Action: ActionDeny, From: StatusPending, To: StatusRejected, Actors: []Actor{ActorArtist, ActorCommissioner}},
		{Action: ActionAccept, From: StatusPending, To: StatusAccepted, Actors: []Actor{ActorCommissioner}},
		{Action: ActionPay, From: StatusPending, To: StatusPaid, Actors: []Actor{ActorPaymentProvider}},
		{Action: ActionPay, From: StatusAccepted, To: StatusPaid, Actors: []Actor{ActorPaymentProvider}},
		{Action: ActionComplete, From: StatusPaid, To: StatusCompleted, Actors: []Actor{ActorArtist}},
	},
}

// CanTransition: có cạnh from -> to trong bảng hay không (bất kể actor)
func (sm *StateMachine) CanTransition(from, to Status) bool {
	for _, t := range sm.Transitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// AvailableTransitions lọc theo from và actor; actor rỗng = mọi actor
func (sm *StateMachine) AvailableTransitions(from Status, actor Actor) []Transition {
	r := []Transition{}
	for _, t := range sm.Transitions {
		if t.From != from {
			continue
		}
		if actor != "" && !t.AllowedFor(actor) {
			continue
		}
		r = append(r, t)
	}
	return r
}

// SourcesFor trả về các trạng thái mà action có thể xuất phát
func (sm *StateMachine) SourcesFor(action Action) []Status {
	var from []Status
	for _, t := range sm.Transitions {
		if t.Action == action {
			from = append(from, t.From)
		}
	}
	return from
}

// Find trả về transition của action xuất phát từ from
func (sm *StateMachine) Find(action Action, from Status) (Transition, bool) {
	for _, t := range sm.Transitions {
		if t.Action == action && t.From == from {
			return t, true
		}
	}
	return Transition{}, false
}
