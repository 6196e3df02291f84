package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type AppointmentValues struct {
	PatientID       string `json:"patientId" form:"patientId" validate:"required,patient"`
	DentistID       string `json:"dentistId" form:"dentistId" validate:"required,dentist"`
	AppointmentDate string `json:"appointmentDate" form:"appointmentDate" validate:"required,datetime=2006-01-02,notpast"`
	AppointmentTime string `json:"appointmentTime" form:"appointmentTime" validate:"required,timeslot"`
	TreatmentType   string `json:"treatmentType" form:"treatmentType" validate:"required,treatment"`
	Notes           string `json:"notes" form:"notes"`
}

var appointmentMessages = messages{
	"patientId":       {"": "Please select a patient"},
	"dentistId":       {"": "Please select a dentist"},
	"appointmentDate": {"": "Please select a date", "notpast": "Appointment date cannot be in the past"},
	"appointmentTime": {"": "Please select a time"},
	"treatmentType":   {"": "Please select a treatment type"},
}

// AppointmentOptions are the choices offered by the form's selects.
type AppointmentOptions struct {
	Patients       []models.Option
	Dentists       []models.Option
	TreatmentTypes []string
	TimeSlots      []string
	Location       *time.Location
	Now            func() time.Time
}

// AppointmentForm creates appointments. It has no edit mode.
type AppointmentForm struct {
	opts     AppointmentOptions
	validate *validator.Validate
	*submitter
}

func NewAppointmentForm(opts AppointmentOptions, deps Deps, cb Callbacks) *AppointmentForm {
	if opts.Location == nil {
		opts.Location = timezone.Location("")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := &AppointmentForm{
		opts:      opts,
		validate:  newValidator(),
		submitter: newSubmitter("appointment", deps, cb),
	}

	_ = f.validate.RegisterValidation("patient", optionID(opts.Patients))
	_ = f.validate.RegisterValidation("dentist", optionID(opts.Dentists))
	_ = f.validate.RegisterValidation("timeslot", oneOf(opts.TimeSlots))
	_ = f.validate.RegisterValidation("treatment", oneOf(opts.TreatmentTypes))
	_ = f.validate.RegisterValidation("notpast", f.notPast)

	return f
}

func (f *AppointmentForm) Options() AppointmentOptions {
	return f.opts
}

func (f *AppointmentForm) Defaults() AppointmentValues {
	return AppointmentValues{}
}

// Validate runs the field rules without submitting.
func (f *AppointmentForm) Validate(v AppointmentValues) error {
	return check(f.validate, v, appointmentMessages)
}

// Submit validates v and, when it passes, starts the simulated save.
func (f *AppointmentForm) Submit(ctx context.Context, v AppointmentValues) (*Submission, error) {
	if err := f.Validate(v); err != nil {
		f.observe(OutcomeInvalid)
		return nil, err
	}
	if err := f.begin(); err != nil {
		return nil, err
	}

	patient, _ := models.FindOption(f.opts.Patients, v.PatientID)
	dentist, _ := models.FindOption(f.opts.Dentists, v.DentistID)
	date, _ := timezone.ParseDate(f.opts.Location, v.AppointmentDate)

	n := notify.Success(
		"Appointment created successfully",
		fmt.Sprintf("Appointment for %s with %s on %s at %s.",
			patient.Name, dentist.Name, LongDate(date), v.AppointmentTime),
	)

	return f.start(ctx, job{payload: v, notification: n}), nil
}

func (f *AppointmentForm) Cancel(ctx context.Context) {
	f.cancel(ctx, "")
}

func (f *AppointmentForm) notPast(fl validator.FieldLevel) bool {
	date, err := timezone.ParseDate(f.opts.Location, fl.Field().String())
	if err != nil {
		return false
	}
	today := timezone.StartOfDay(f.opts.Now().In(f.opts.Location))
	return !date.Before(today)
}

// LongDate renders a date as "October 20th, 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}

func optionID(options []models.Option) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := models.FindOption(options, fl.Field().String())
		return ok
	}
}
