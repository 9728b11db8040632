package models

// PaymentIntentRequest asks the payment collaborator to collect the
// consultation fee for an appointment.
type PaymentIntentRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
}

// PaymentIntentResponse carries what the client needs to complete payment.
type PaymentIntentResponse struct {
	PaymentID    string `json:"paymentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentConfirmation reports the gateway outcome for a collected payment.
type PaymentConfirmation struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	PaymentID     string `json:"paymentId" binding:"required"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
