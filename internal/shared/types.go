package shared

// Task types (asynq)
const (
	TypeCommissionRequested = "email:commission_requested"
	TypeCommissionPriceSet  = "email:commission_price_set"
	TypeCommissionAccepted  = "email:commission_accepted"
	TypeCommissionDenied    = "email:commission_denied"
	TypeCommissionPaid      = "email:commission_paid"
	TypeCommissionCompleted = "email:commission_completed"

	QueueNotification = "notification"
)

// NotificationKind là loại thông báo gắn với mỗi bước của commission
type NotificationKind string

const (
	NotifyRequested NotificationKind = "requested"
	NotifyPriceSet  NotificationKind = "price_set"
	NotifyAccepted  NotificationKind = "accepted"
	NotifyDenied    NotificationKind = "denied"
	NotifyPaid      NotificationKind = "paid"
	NotifyCompleted NotificationKind = "completed"
)

// TaskType maps a notification kind to its asynq task type.
func (k NotificationKind) TaskType() string {
	switch k {
	case NotifyRequested:
		return TypeCommissionRequested
	case NotifyPriceSet:
		return TypeCommissionPriceSet
	case NotifyAccepted:
		return TypeCommissionAccepted
	case NotifyDenied:
		return TypeCommissionDenied
	case NotifyPaid:
		return TypeCommissionPaid
	case NotifyCompleted:
		return TypeCommissionCompleted
	}
	return ""
}

// Party xác định người nhận trong một commission
type Party string

const (
	PartyArtist       Party = "ARTIST"
	PartyCommissioner Party = "COMMISSIONER"
)

// User basic info (để tránh import cycle với user domain)
type UserBasicInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// CommissionNotificationPayload là payload của mọi task email:commission_*
type CommissionNotificationPayload struct {
	Kind         NotificationKind `json:"kind"`
	CommissionID string           `json:"commissionId"`
	Title        string           `json:"title"`
	Price        string           `json:"price,omitempty"`
	Artist       UserBasicInfo    `json:"artist"`
	Commissioner UserBasicInfo    `json:"commissioner"`
	Recipients   []Party          `json:"recipients"`
}

// RecipientInfos resolves the recipient parties to addresses.
func (p CommissionNotificationPayload) RecipientInfos() []UserBasicInfo {
	out := make([]UserBasicInfo, 0, len(p.Recipients))
	for _, r := range p.Recipients {
		switch r {
		case PartyArtist:
			out = append(out, p.Artist)
		case PartyCommissioner:
			out = append(out, p.Commissioner)
		}
	}
	return out
}
