package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zunde-outreach/checkin-api/internal/domain"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) SendReminders(ctx context.Context, eventID uuid.UUID, prefs *domain.NotificationPreference) (service.ReminderReport, error) {
	args := m.Called(ctx, eventID, prefs)
	return args.Get(0).(service.ReminderReport), args.Error(1)
}

func newNotificationRouter(svc NotificationService) *gin.Engine {
	h := NewNotificationHandler(svc)
	r := gin.New()
	r.POST("/notifications", h.HandleSendNotifications)

	return r
}

func TestHandleSendNotifications(t *testing.T) {
	eventID := uuid.New()
	svc := new(mockNotificationService)
	svc.On("SendReminders", mock.Anything, eventID, (*domain.NotificationPreference)(nil)).Return(service.ReminderReport{
		Sent:  1,
		Total: 2,
		Outcomes: []service.ReminderOutcome{
			{Name: "Jane Doe", Success: true, Results: map[string]bool{"email": true, "sms": false}},
			{Name: "John Doe", Success: false, Results: map[string]bool{"email": false, "sms": false}},
		},
	}, nil)

	w := performRequest(t, newNotificationRouter(svc), http.MethodPost, "/notifications", map[string]any{
		"eventId": eventID.String(),
		"type":    "reminder",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Sent 1 of 2 notifications", body["message"])
	assert.EqualValues(t, 1, body["sent"])
	assert.EqualValues(t, 2, body["total"])
	assert.Len(t, body["results"], 2)
}

func TestHandleSendNotifications_Preferences(t *testing.T) {
	eventID := uuid.New()
	svc := new(mockNotificationService)
	svc.On("SendReminders", mock.Anything, eventID, &domain.NotificationPreference{WhatsApp: true}).
		Return(service.ReminderReport{Sent: 1, Total: 1}, nil)

	w := performRequest(t, newNotificationRouter(svc), http.MethodPost, "/notifications", map[string]any{
		"eventId":     eventID.String(),
		"type":        "reminder",
		"preferences": map[string]bool{"whatsapp": true},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleSendNotifications_NoRecipients(t *testing.T) {
	svc := new(mockNotificationService)
	svc.On("SendReminders", mock.Anything, mock.Anything, mock.Anything).Return(service.ReminderReport{}, nil)

	w := performRequest(t, newNotificationRouter(svc), http.MethodPost, "/notifications", map[string]any{
		"eventId": uuid.NewString(),
		"type":    "reminder",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "No participants found for this event", body["message"])
	assert.EqualValues(t, 0, body["sent"])
	assert.EqualValues(t, 0, body["total"])
	assert.Equal(t, []any{}, body["results"])
}

func TestHandleSendNotifications_Interrupted(t *testing.T) {
	svc := new(mockNotificationService)
	svc.On("SendReminders", mock.Anything, mock.Anything, mock.Anything).Return(service.ReminderReport{
		Sent:  1,
		Total: 3,
		Outcomes: []service.ReminderOutcome{
			{Name: "Jane Doe", Success: true, Results: map[string]bool{"email": true}},
		},
	}, context.DeadlineExceeded)

	w := performRequest(t, newNotificationRouter(svc), http.MethodPost, "/notifications", map[string]any{
		"eventId": uuid.NewString(),
		"type":    "reminder",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Sent 1 of 3 notifications before the run was interrupted", body["message"])
	assert.EqualValues(t, 1, body["sent"])
	assert.EqualValues(t, 3, body["total"])
	assert.Len(t, body["results"], 1)
}

func TestHandleSendNotifications_Invalid(t *testing.T) {
	svc := new(mockNotificationService)
	svc.On("SendReminders", mock.Anything, mock.Anything, mock.Anything).Return(service.ReminderReport{}, service.ErrEventNotFound)
	r := newNotificationRouter(svc)

	w := performRequest(t, r, http.MethodPost, "/notifications", map[string]any{"eventId": uuid.NewString(), "type": "survey"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodPost, "/notifications", map[string]any{"eventId": uuid.NewString(), "type": "reminder"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event not found", decodeBody(t, w)["error"])
}
