package dto

import (
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

// SubmissionDTO answers an accepted form once its save has completed.
type SubmissionDTO struct {
	ID           string              `json:"id"`
	Notification notify.Notification `json:"notification"`
}

type AppointmentOptionsDTO struct {
	Patients       []models.Option `json:"patients"`
	Dentists       []models.Option `json:"dentists"`
	TreatmentTypes []string        `json:"treatment_types"`
	TimeSlots      []string        `json:"time_slots"`
}

type DentistOptionsDTO struct {
	Specializations []string `json:"specializations"`
	Statuses        []string `json:"statuses"`
}

type UserOptionsDTO struct {
	Roles    []string `json:"roles"`
	Statuses []string `json:"statuses"`
}

// FormDefaultsDTO is what a dialog shows when it opens.
type FormDefaultsDTO struct {
	Mode   string `json:"mode"`
	Values any    `json:"values"`
}
