package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterParticipantRequest_Validate(t *testing.T) {
	valid := func() RegisterParticipantRequest {
		return RegisterParticipantRequest{
			FullName:      "Jane Doe",
			ContactNumber: "+263 (77) 123-4567",
			Email:         "jane@example.com",
			EventID:       "3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11",
		}
	}

	req := valid()
	require.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(*RegisterParticipantRequest)
	}{
		{"short phone", func(r *RegisterParticipantRequest) { r.ContactNumber = "12345" }},
		{"letters in phone", func(r *RegisterParticipantRequest) { r.ContactNumber = "0771234abc" }},
		{"too many digits", func(r *RegisterParticipantRequest) { r.ContactNumber = "1234567890123456" }},
		{"bad email", func(r *RegisterParticipantRequest) { r.Email = "jane" }},
		{"bad event id", func(r *RegisterParticipantRequest) { r.EventID = "event-1" }},
		{"bad emergency phone", func(r *RegisterParticipantRequest) { r.EmergencyContactNumber = "call me" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestRegisterParticipantRequest_MissingFields(t *testing.T) {
	for _, field := range []string{"fullName", "email", "contactNumber", "eventId"} {
		t.Run(field, func(t *testing.T) {
			req := RegisterParticipantRequest{
				FullName:      "Jane Doe",
				ContactNumber: "0771234567",
				Email:         "jane@example.com",
				EventID:       "3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11",
			}
			switch field {
			case "fullName":
				req.FullName = "  "
			case "email":
				req.Email = ""
			case "contactNumber":
				req.ContactNumber = ""
			case "eventId":
				req.EventID = ""
			}

			assert.ErrorIs(t, req.Validate(), ErrMissingRegistrationFields)
		})
	}
}

func TestRegisterParticipantRequest_Input(t *testing.T) {
	req := RegisterParticipantRequest{
		FullName:               " Jane Doe ",
		ContactNumber:          "0771234567",
		Email:                  "jane@example.com",
		EventID:                "3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11",
		NotificationPreference: &NotificationPreferenceRequest{SMS: true},
	}

	in := req.Input()

	assert.Equal(t, "Jane Doe", in.FullName)
	assert.Equal(t, "3f1c2a9e-8f0b-4d55-9a39-5f3f0b7b1c11", in.EventID.String())
	require.NotNil(t, in.NotificationPreference)
	assert.True(t, in.NotificationPreference.SMS)
	assert.False(t, in.NotificationPreference.Email)

	req.NotificationPreference = nil
	assert.Nil(t, req.Input().NotificationPreference)
}

func TestCreateEventRequest_DateLayouts(t *testing.T) {
	for _, date := range []string{"2025-03-02T08:00:00+02:00", "2025-03-02T06:00", "2025-03-02"} {
		req := CreateEventRequest{
			Name:                 "Sunday Outreach",
			Date:                 date,
			DepartureLocations:   []string{"Central Church"},
			MaxParticipants:      10,
			RegistrationDeadline: "2025-03-01",
		}
		require.NoError(t, req.Validate(), date)
		assert.Equal(t, 2025, req.Event().Date.Year())
	}

	req := CreateEventRequest{
		Name:                 "Sunday Outreach",
		Date:                 "2025-03-02T08:00:00+02:00",
		DepartureLocations:   []string{"Central Church"},
		MaxParticipants:      10,
		RegistrationDeadline: "2025-03-01",
	}
	assert.True(t, req.Event().Date.Equal(time.Date(2025, 3, 2, 6, 0, 0, 0, time.UTC)))
}

func TestCheckInRequest_Validate(t *testing.T) {
	checkout := CheckInRequest{TicketID: "ZUN-ABC123-XYZ789", Action: ActionCheckOut}
	assert.NoError(t, checkout.Validate())

	checkin := CheckInRequest{TicketID: "ZUN-ABC123-XYZ789", Action: ActionCheckIn, BusNumber: "Bus A", StaffMember: "Tendai"}
	assert.Error(t, checkin.Validate())

	checkin.Location = "Central Church"
	assert.NoError(t, checkin.Validate())
}
