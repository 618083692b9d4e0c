package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
	_ "time/tzdata" // Embed the zone database for minimal containers.

	"github.com/zunde-outreach/checkin-api/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	dateLayout = "Monday, January 2, 2006"
	timeLayout = "3:04 PM"

	// QRCodeCID is the content id of the inline ticket image in confirmation emails.
	QRCodeCID = "ticket-qr.png"
)

// Message is a composed notification for one channel. HTML is only set for email.
type Message struct {
	Subject string
	Body    string
	HTML    string
}

// Composer renders notification texts from the message catalogue and the
// embedded email templates.
type Composer struct {
	translator   *Translator
	locale       string
	organization string
	location     *time.Location
}

type ComposerConfig struct {
	Locale       string
	Timezone     string
	Organization string
}

func NewComposer(translator *Translator, conf ComposerConfig) (*Composer, error) {
	loc := time.UTC
	if conf.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(conf.Timezone)
		if err != nil {
			return nil, fmt.Errorf("time.LoadLocation -> %w", err)
		}
	}

	return &Composer{
		translator:   translator,
		locale:       conf.Locale,
		organization: conf.Organization,
		location:     loc,
	}, nil
}

func (c *Composer) data(p domain.Participant, e domain.Event) map[string]any {
	date := e.Date.In(c.location)

	return map[string]any{
		"Organization": c.organization,
		"Name":         p.FullName,
		"EventName":    e.Name,
		"TicketID":     p.TicketID,
		"Location":     p.PreferredDepartureLocation,
		"Date":         date.Format(dateLayout),
		"Time":         date.Format(timeLayout),
	}
}

func (c *Composer) RegistrationEmail(p domain.Participant, e domain.Event, withQRCode bool) (Message, error) {
	data := c.data(p, e)
	if withQRCode {
		data["QRCodeSrc"] = template.URL("cid:" + QRCodeCID)
	}

	html, err := render("registration.html", data)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Subject: c.translator.T(c.locale, "RegistrationEmailSubject", data),
		HTML:    html,
	}, nil
}

func (c *Composer) RegistrationText(p domain.Participant, e domain.Event, channel string) Message {
	key := "RegistrationSMS"
	if channel == ChannelWhatsApp {
		key = "RegistrationWhatsApp"
	}

	return Message{Body: c.translator.T(c.locale, key, c.data(p, e))}
}

func (c *Composer) ReminderEmail(p domain.Participant, e domain.Event) (Message, error) {
	data := c.data(p, e)

	html, err := render("reminder.html", data)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Subject: c.translator.T(c.locale, "ReminderEmailSubject", data),
		HTML:    html,
	}, nil
}

func (c *Composer) ReminderText(p domain.Participant, e domain.Event, channel string) Message {
	key := "ReminderSMS"
	if channel == ChannelWhatsApp {
		key = "ReminderWhatsApp"
	}

	return Message{Body: c.translator.T(c.locale, key, c.data(p, e))}
}

func (c *Composer) CheckInText(p domain.Participant, e domain.Event, busNumber string) Message {
	data := c.data(p, e)
	data["BusNumber"] = busNumber

	return Message{Body: c.translator.T(c.locale, "CheckInSMS", data)}
}

func render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("emailTemplates.ExecuteTemplate(%s) -> %w", name, err)
	}

	return buf.String(), nil
}
