package models

// ReminderPayload is the asynq payload for a session reminder.
type ReminderPayload struct {
	TicketID       string `json:"ticketId"`
	CustomerID     string `json:"customerId"`
	MovieSessionID string `json:"movieSessionId"`
	Movie          string `json:"movie"`
	StartsAt       string `json:"startsAt"`
}
