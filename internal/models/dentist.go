package models

// AccountStatus is shared by dentists and users.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

func StatusFromActive(active bool) AccountStatus {
	if active {
		return StatusActive
	}
	return StatusInactive
}

type Dentist struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Email             string        `json:"email" yaml:"email"`
	Phone             string        `json:"phone" yaml:"phone"`
	Specialization    string        `json:"specialization" yaml:"specialization"`
	YearsOfExperience int           `json:"years_of_experience" yaml:"years_of_experience"`
	Description       string        `json:"description,omitempty" yaml:"description"`
	Availability      string        `json:"availability" yaml:"availability"`
	Status            AccountStatus `json:"status" yaml:"status"`
	Patients          int           `json:"patients" yaml:"patients"`
	Rating            float64       `json:"rating" yaml:"rating"`
}
