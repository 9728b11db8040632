package handlers

import (
	userRepoPkg "opdflow/database/repository/user"
	appointmentSvc "opdflow/services/appointment"
	doctorSvc "opdflow/services/doctor"
	paymentSvc "opdflow/services/payment"
	"opdflow/services/storage"
	userSvc "opdflow/services/user"
)

// HandlerBundle groups all endpoint handlers and the shared dependencies the
// route registration needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth         *AuthHandler
	Doctors      *DoctorHandler
	Appointments *AppointmentHandler
	Payments     *PaymentHandler
	Uploads      *UploadHandler
}

// AuthHandler serves account registration and session endpoints.
type AuthHandler struct {
	UserService userSvc.UserService
}

// DoctorHandler serves doctor profiles, schedules and derived slots.
type DoctorHandler struct {
	DoctorService doctorSvc.DoctorService
}

// AppointmentHandler serves the appointment lifecycle endpoints.
type AppointmentHandler struct {
	AppointmentService appointmentSvc.AppointmentService
}

// PaymentHandler serves consultation fee payment endpoints.
type PaymentHandler struct {
	PaymentService paymentSvc.PaymentService
}

// UploadHandler serves profile image uploads.
type UploadHandler struct {
	Storage       storage.StorageService
	DoctorService doctorSvc.DoctorService
}
