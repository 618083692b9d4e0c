package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/pkg/ticket"
)

const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// Result reports per-channel delivery. Only attempted channels appear in Results.
type Result struct {
	Success bool            `json:"success"`
	Results map[string]bool `json:"results"`
}

func newResult() Result {
	return Result{Results: map[string]bool{}}
}

func (r *Result) record(channel string, err error) {
	ok := err == nil
	if !ok {
		zap.L().Warn("notification channel failed", zap.String("channel", channel), zap.Error(err))
	}

	r.Results[channel] = ok
	r.Success = r.Success || ok
}

// Dispatcher fans a notification out to the channels a participant enabled.
// A failing channel never prevents the others from being attempted.
type Dispatcher struct {
	composer *Composer
	email    EmailSender
	sms      TextSender
	whatsapp TextSender
}

func NewDispatcher(composer *Composer, email EmailSender, sms, whatsapp TextSender) *Dispatcher {
	return &Dispatcher{
		composer: composer,
		email:    email,
		sms:      sms,
		whatsapp: whatsapp,
	}
}

func (d *Dispatcher) SendRegistrationConfirmation(ctx context.Context, p domain.Participant, e domain.Event, qrCode string, prefs domain.NotificationPreference) Result {
	res := newResult()

	if prefs.Email {
		res.record(ChannelEmail, d.sendRegistrationEmail(ctx, p, e, qrCode))
	}
	if prefs.SMS {
		msg := d.composer.RegistrationText(p, e, ChannelSMS)
		res.record(ChannelSMS, d.sms.SendText(ctx, p.ContactNumber, msg.Body))
	}
	if prefs.WhatsApp {
		msg := d.composer.RegistrationText(p, e, ChannelWhatsApp)
		res.record(ChannelWhatsApp, d.whatsapp.SendText(ctx, p.ContactNumber, msg.Body))
	}

	return res
}

func (d *Dispatcher) sendRegistrationEmail(ctx context.Context, p domain.Participant, e domain.Event, qrCode string) error {
	var inline []InlineImage
	if raw, err := ticket.PNGFromDataURL(qrCode); err == nil {
		inline = append(inline, InlineImage{Filename: QRCodeCID, ContentType: "image/png", Data: raw})
	} else {
		zap.L().Warn("ticket email sent without QR code image", zap.String("ticket_id", p.TicketID), zap.Error(err))
	}

	msg, err := d.composer.RegistrationEmail(p, e, len(inline) > 0)
	if err != nil {
		return err
	}

	return d.email.SendEmail(ctx, Email{
		To:      p.Email,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Inline:  inline,
	})
}

func (d *Dispatcher) SendEventReminder(ctx context.Context, p domain.Participant, e domain.Event, prefs domain.NotificationPreference) Result {
	res := newResult()

	if prefs.Email {
		msg, err := d.composer.ReminderEmail(p, e)
		if err == nil {
			err = d.email.SendEmail(ctx, Email{To: p.Email, Subject: msg.Subject, HTML: msg.HTML})
		}
		res.record(ChannelEmail, err)
	}
	if prefs.SMS {
		msg := d.composer.ReminderText(p, e, ChannelSMS)
		res.record(ChannelSMS, d.sms.SendText(ctx, p.ContactNumber, msg.Body))
	}
	if prefs.WhatsApp {
		msg := d.composer.ReminderText(p, e, ChannelWhatsApp)
		res.record(ChannelWhatsApp, d.whatsapp.SendText(ctx, p.ContactNumber, msg.Body))
	}

	return res
}

// SendCheckInConfirmation only has an SMS rendition; other channels are ignored.
func (d *Dispatcher) SendCheckInConfirmation(ctx context.Context, p domain.Participant, e domain.Event, busNumber string, prefs domain.NotificationPreference) Result {
	res := newResult()

	if prefs.SMS {
		msg := d.composer.CheckInText(p, e, busNumber)
		res.record(ChannelSMS, d.sms.SendText(ctx, p.ContactNumber, msg.Body))
	}

	return res
}
