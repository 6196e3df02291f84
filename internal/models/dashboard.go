package models

type ChangeType string

const (
	ChangeIncrease ChangeType = "increase"
	ChangeDecrease ChangeType = "decrease"
)

type StatChange struct {
	Value string     `json:"value" yaml:"value"`
	Type  ChangeType `json:"type" yaml:"type"`
}

// StatCard holds a raw figure; presentation formats it according to Format.
type StatCard struct {
	Title  string      `json:"title" yaml:"title"`
	Amount float64     `json:"amount" yaml:"amount"`
	Format string      `json:"format" yaml:"format"` // "number" or "currency"
	Value  string      `json:"value" yaml:"-"`
	Change *StatChange `json:"change,omitempty" yaml:"change"`
}

type ChartPoint struct {
	Name         string `json:"name" yaml:"name"`
	Patients     int    `json:"patients" yaml:"patients"`
	Appointments int    `json:"appointments" yaml:"appointments"`
}

type ActivityType string

const (
	ActivityAppointment ActivityType = "appointment"
	ActivityPatient     ActivityType = "patient"
	ActivityDentist     ActivityType = "dentist"
	ActivityPayment     ActivityType = "payment"
)

type Activity struct {
	ID       int          `json:"id" yaml:"id"`
	UserName string       `json:"user_name" yaml:"user"`
	Initials string       `json:"initials" yaml:"-"`
	Action   string       `json:"action" yaml:"action"`
	Target   string       `json:"target" yaml:"target"`
	Time     string       `json:"time" yaml:"time"`
	Type     ActivityType `json:"type" yaml:"type"`
}

type UpcomingAppointment struct {
	ID          int               `json:"id" yaml:"id"`
	PatientName string            `json:"patient_name" yaml:"patient"`
	Initials    string            `json:"initials" yaml:"-"`
	Time        string            `json:"time" yaml:"time"`
	Address     string            `json:"address" yaml:"address"`
	DentistName string            `json:"dentist_name" yaml:"dentist"`
	Status      AppointmentStatus `json:"status" yaml:"status"`
}
