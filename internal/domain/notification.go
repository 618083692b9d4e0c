package domain

type NotificationPreference struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// DefaultNotificationPreference is used when a caller does not state one.
func DefaultNotificationPreference() NotificationPreference {
	return NotificationPreference{Email: true, SMS: true}
}

func (p NotificationPreference) Any() bool {
	return p.Email || p.SMS || p.WhatsApp
}
