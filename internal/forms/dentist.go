package forms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

type DentistValues struct {
	Name           string `json:"name" form:"name" validate:"required,min=3"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone" validate:"required,min=6"`
	Specialization string `json:"specialization" form:"specialization" validate:"required,specialization"`
	Experience     string `json:"experience" form:"experience" validate:"required,years"`
	Description    string `json:"description" form:"description"`
	Availability   string `json:"availability" form:"availability" validate:"required"`
	IsActive       bool   `json:"isActive" form:"isActive"`
}

// maxExperience bounds the years of experience a dentist can report.
const maxExperience = 70

var dentistMessages = messages{
	"name":           {"": "Name must be at least 3 characters."},
	"email":          {"": "Please enter a valid email address."},
	"phone":          {"": "Please enter a valid phone number."},
	"specialization": {"": "Please select a specialization."},
	"experience":     {"": "Please enter years of experience."},
	"availability":   {"": "Please enter availability schedule."},
}

// DentistForm adds a dentist, or edits one when constructed with an existing
// record.
type DentistForm struct {
	existing        *models.Dentist
	specializations []string
	validate        *validator.Validate
	*submitter
}

func NewDentistForm(existing *models.Dentist, specializations []string, deps Deps, cb Callbacks) *DentistForm {
	f := &DentistForm{
		existing:        existing,
		specializations: specializations,
		validate:        newValidator(),
		submitter:       newSubmitter("dentist", deps, cb),
	}
	_ = f.validate.RegisterValidation("specialization", oneOf(specializations))
	_ = f.validate.RegisterValidation("years", wholeNumber(0, maxExperience))
	return f
}

func (f *DentistForm) Mode() Mode {
	return modeOf(f.existing != nil)
}

func (f *DentistForm) Existing() *models.Dentist {
	return f.existing
}

func (f *DentistForm) Specializations() []string {
	return f.specializations
}

// Defaults pre-fills the fields from the record being edited.
func (f *DentistForm) Defaults() DentistValues {
	d := f.existing
	if d == nil {
		return DentistValues{IsActive: true}
	}
	return DentistValues{
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialization: d.Specialization,
		Experience:     strconv.Itoa(d.YearsOfExperience),
		Description:    d.Description,
		Availability:   d.Availability,
		IsActive:       d.Status != models.StatusInactive,
	}
}

func (f *DentistForm) Validate(v DentistValues) error {
	return check(f.validate, v, dentistMessages)
}

func (f *DentistForm) Submit(ctx context.Context, v DentistValues) (*Submission, error) {
	if err := f.Validate(v); err != nil {
		f.observe(OutcomeInvalid)
		return nil, err
	}
	years, err := strconv.Atoi(v.Experience)
	if err != nil {
		f.observe(OutcomeInvalid)
		return nil, &ValidationError{Fields: map[string]string{"experience": dentistMessages.lookup("experience", "")}}
	}
	if err := f.begin(); err != nil {
		return nil, err
	}
	record := models.Dentist{
		Name:              v.Name,
		Email:             v.Email,
		Phone:             v.Phone,
		Specialization:    v.Specialization,
		YearsOfExperience: years,
		Description:       v.Description,
		Availability:      v.Availability,
		Status:            models.StatusFromActive(v.IsActive),
	}

	title, verb := "Dentist added successfully", "added"
	if f.existing != nil {
		record.ID = f.existing.ID
		title, verb = "Dentist updated successfully", "updated"
	}

	n := notify.Success(title, fmt.Sprintf("%s has been %s to the system.", v.Name, verb))
	return f.start(ctx, job{entityID: record.ID, payload: record, notification: n}), nil
}

func (f *DentistForm) Cancel(ctx context.Context) {
	id := ""
	if f.existing != nil {
		id = f.existing.ID
	}
	f.cancel(ctx, id)
}
