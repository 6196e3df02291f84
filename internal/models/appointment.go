package models

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID            string            `json:"id" yaml:"id"`
	PatientName   string            `json:"patient_name" yaml:"patient"`
	DentistName   string            `json:"dentist_name" yaml:"dentist"`
	Date          string            `json:"date" yaml:"date"`
	Time          string            `json:"time" yaml:"time"`
	TreatmentType string            `json:"treatment_type" yaml:"treatment"`
	Notes         string            `json:"notes,omitempty" yaml:"notes"`
	Status        AppointmentStatus `json:"status" yaml:"status"`
}
