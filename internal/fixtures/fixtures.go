// Package fixtures holds the sample datasets the dashboard is seeded with.
// Every component receives its data through a *Seed so tests can swap the
// records without touching component logic.
package fixtures

import "github.com/BruksfildServices01/dental-admin/internal/models"

type ChartSeries struct {
	Weekly  []models.ChartPoint `yaml:"weekly"`
	Monthly []models.ChartPoint `yaml:"monthly"`
	Yearly  []models.ChartPoint `yaml:"yearly"`
}

type Seed struct {
	Appointments    []models.Appointment         `yaml:"appointments"`
	Dentists        []models.Dentist             `yaml:"dentists"`
	Users           []models.User                `yaml:"users"`
	Patients        []models.Option              `yaml:"patients"`
	DentistOptions  []models.Option              `yaml:"dentist_options"`
	TreatmentTypes  []string                     `yaml:"treatment_types"`
	TimeSlots       []string                     `yaml:"time_slots"`
	Specializations []string                     `yaml:"specializations"`
	Stats           []models.StatCard            `yaml:"stats"`
	Chart           ChartSeries                  `yaml:"chart"`
	Activities      []models.Activity            `yaml:"activities"`
	Upcoming        []models.UpcomingAppointment `yaml:"upcoming"`
}

// Default returns a fresh copy of the built-in sample data.
func Default() *Seed {
	return &Seed{
		Appointments:    defaultAppointments(),
		Dentists:        defaultDentists(),
		Users:           defaultUsers(),
		Patients:        defaultPatients(),
		DentistOptions:  defaultDentistOptions(),
		TreatmentTypes:  defaultTreatmentTypes(),
		TimeSlots:       defaultTimeSlots(),
		Specializations: defaultSpecializations(),
		Stats:           defaultStats(),
		Chart:           defaultChart(),
		Activities:      defaultActivities(),
		Upcoming:        defaultUpcoming(),
	}
}

func defaultAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "APT001", PatientName: "John Cooper", DentistName: "Dr. Sarah Wilson", Date: "2023-10-15", Time: "10:30 AM", TreatmentType: "Root Canal", Status: models.AppointmentConfirmed},
		{ID: "APT002", PatientName: "Emma Williams", DentistName: "Dr. Michael Chen", Date: "2023-10-15", Time: "1:00 PM", TreatmentType: "Teeth Cleaning", Status: models.AppointmentPending},
		{ID: "APT003", PatientName: "David Johnson", DentistName: "Dr. Amanda Lee", Date: "2023-10-15", Time: "3:15 PM", TreatmentType: "Dental Checkup", Status: models.AppointmentConfirmed},
		{ID: "APT004", PatientName: "Sophie Garcia", DentistName: "Dr. James Wilson", Date: "2023-10-16", Time: "9:00 AM", TreatmentType: "Tooth Extraction", Status: models.AppointmentCancelled},
		{ID: "APT005", PatientName: "Michael Smith", DentistName: "Dr. Sarah Wilson", Date: "2023-10-16", Time: "11:30 AM", TreatmentType: "Dental Filling", Status: models.AppointmentConfirmed},
		{ID: "APT006", PatientName: "Linda Martinez", DentistName: "Dr. Michael Chen", Date: "2023-10-16", Time: "2:45 PM", TreatmentType: "Teeth Whitening", Status: models.AppointmentPending},
		{ID: "APT007", PatientName: "Robert Clark", DentistName: "Dr. Amanda Lee", Date: "2023-10-17", Time: "10:00 AM", TreatmentType: "Braces Adjustment", Status: models.AppointmentConfirmed},
	}
}

func defaultDentists() []models.Dentist {
	return []models.Dentist{
		{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@dentalcare.com", Phone: "+1 (555) 201-3344", Specialization: "Orthodontist", YearsOfExperience: 8, Status: models.StatusActive, Patients: 42, Rating: 4.8, Availability: "Mon, Wed, Fri"},
		{ID: "2", Name: "Dr. Michael Chen", Email: "michael.chen@dentalcare.com", Phone: "+1 (555) 201-7781", Specialization: "Periodontist", YearsOfExperience: 12, Status: models.StatusActive, Patients: 35, Rating: 4.7, Availability: "Tue, Thu, Sat"},
		{ID: "3", Name: "Dr. Emily Rodriguez", Email: "emily.rodriguez@dentalcare.com", Phone: "+1 (555) 201-9012", Specialization: "Pediatric Dentist", YearsOfExperience: 6, Status: models.StatusActive, Patients: 58, Rating: 4.9, Availability: "Mon-Fri"},
		{ID: "4", Name: "Dr. James Wilson", Email: "james.wilson@dentalcare.com", Phone: "+1 (555) 201-4456", Specialization: "Oral Surgeon", YearsOfExperience: 15, Status: models.StatusInactive, Patients: 27, Rating: 4.6, Availability: "Wed, Thu, Fri"},
		{ID: "5", Name: "Dr. Sophia Lee", Email: "sophia.lee@dentalcare.com", Phone: "+1 (555) 201-6620", Specialization: "Endodontist", YearsOfExperience: 10, Status: models.StatusActive, Patients: 31, Rating: 4.5, Availability: "Mon, Tue, Wed"},
	}
}

func defaultUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com", Role: models.RoleDentist, Status: models.StatusActive, LastActive: "2 hours ago"},
		{ID: "2", Name: "Michael Williams", Email: "michael.williams@example.com", Role: models.RolePatient, Status: models.StatusActive, LastActive: "1 day ago"},
		{ID: "3", Name: "Dr. Robert Davis", Email: "robert.davis@example.com", Role: models.RoleDentist, Status: models.StatusInactive, LastActive: "5 days ago"},
		{ID: "4", Name: "Jennifer Brown", Email: "jennifer.brown@example.com", Role: models.RoleAdmin, Status: models.StatusActive, LastActive: "Just now"},
		{ID: "5", Name: "David Miller", Email: "david.miller@example.com", Role: models.RolePatient, Status: models.StatusActive, LastActive: "3 hours ago"},
	}
}

func defaultPatients() []models.Option {
	return []models.Option{
		{ID: "P001", Name: "John Cooper"},
		{ID: "P002", Name: "Emma Williams"},
		{ID: "P003", Name: "David Johnson"},
		{ID: "P004", Name: "Sophie Garcia"},
		{ID: "P005", Name: "Michael Smith"},
	}
}

func defaultDentistOptions() []models.Option {
	return []models.Option{
		{ID: "D001", Name: "Dr. Sarah Wilson"},
		{ID: "D002", Name: "Dr. Michael Chen"},
		{ID: "D003", Name: "Dr. Amanda Lee"},
		{ID: "D004", Name: "Dr. James Wilson"},
	}
}

func defaultTreatmentTypes() []string {
	return []string{
		"Dental Checkup",
		"Teeth Cleaning",
		"Dental Filling",
		"Root Canal",
		"Tooth Extraction",
		"Teeth Whitening",
		"Braces Adjustment",
		"Dental Crown",
		"Dental Bridge",
		"Dental Implant",
	}
}

func defaultTimeSlots() []string {
	return []string{
		"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
		"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
		"4:00 PM", "4:30 PM",
	}
}

func defaultSpecializations() []string {
	return []string{
		"General Dentist",
		"Orthodontist",
		"Pediatric Dentist",
		"Periodontist",
		"Endodontist",
		"Oral Surgeon",
		"Prosthodontist",
		"Cosmetic Dentist",
	}
}

func defaultStats() []models.StatCard {
	return []models.StatCard{
		{Title: "Total Patients", Amount: 200913, Format: "number", Change: &models.StatChange{Value: "2,500", Type: models.ChangeIncrease}},
		{Title: "Scheduled Appointments", Amount: 5290, Format: "number", Change: &models.StatChange{Value: "320", Type: models.ChangeIncrease}},
		{Title: "Completed Orders", Amount: 2220, Format: "number", Change: &models.StatChange{Value: "480", Type: models.ChangeIncrease}},
		{Title: "Monthly Revenue", Amount: 145000, Format: "currency", Change: &models.StatChange{Value: "12.5%", Type: models.ChangeIncrease}},
	}
}

func defaultChart() ChartSeries {
	return ChartSeries{
		Weekly: []models.ChartPoint{
			{Name: "Mon", Patients: 20, Appointments: 15},
			{Name: "Tue", Patients: 25, Appointments: 20},
			{Name: "Wed", Patients: 30, Appointments: 25},
			{Name: "Thu", Patients: 22, Appointments: 18},
			{Name: "Fri", Patients: 28, Appointments: 23},
			{Name: "Sat", Patients: 15, Appointments: 10},
			{Name: "Sun", Patients: 5, Appointments: 2},
		},
		Monthly: []models.ChartPoint{
			{Name: "Jan", Patients: 65, Appointments: 40},
			{Name: "Feb", Patients: 59, Appointments: 45},
			{Name: "Mar", Patients: 80, Appointments: 60},
			{Name: "Apr", Patients: 81, Appointments: 55},
			{Name: "May", Patients: 56, Appointments: 40},
			{Name: "Jun", Patients: 55, Appointments: 45},
			{Name: "Jul", Patients: 40, Appointments: 30},
			{Name: "Aug", Patients: 70, Appointments: 65},
			{Name: "Sep", Patients: 60, Appointments: 50},
			{Name: "Oct", Patients: 75, Appointments: 60},
			{Name: "Nov", Patients: 85, Appointments: 70},
			{Name: "Dec", Patients: 90, Appointments: 75},
		},
		Yearly: []models.ChartPoint{
			{Name: "2020", Patients: 800, Appointments: 600},
			{Name: "2021", Patients: 950, Appointments: 750},
			{Name: "2022", Patients: 1100, Appointments: 900},
			{Name: "2023", Patients: 1250, Appointments: 1050},
		},
	}
}

func defaultActivities() []models.Activity {
	return []models.Activity{
		{ID: 1, UserName: "John Doe", Action: "scheduled an appointment with", Target: "Dr. Sarah Wilson", Time: "5 minutes ago", Type: models.ActivityAppointment},
		{ID: 2, UserName: "Emily Johnson", Action: "completed treatment for", Target: "Root Canal", Time: "30 minutes ago", Type: models.ActivityPatient},
		{ID: 3, UserName: "Dr. Michael Chen", Action: "updated the record of", Target: "Jason Smith", Time: "1 hour ago", Type: models.ActivityDentist},
		{ID: 4, UserName: "Lisa Brown", Action: "made a payment for", Target: "Teeth Whitening", Time: "2 hours ago", Type: models.ActivityPayment},
		{ID: 5, UserName: "Robert Garcia", Action: "cancelled appointment with", Target: "Dr. Amanda Lee", Time: "3 hours ago", Type: models.ActivityAppointment},
	}
}

func defaultUpcoming() []models.UpcomingAppointment {
	return []models.UpcomingAppointment{
		{ID: 1, PatientName: "John Cooper", Time: "10:30 AM - 11:30 AM", Address: "201 Kufian No.21 Street", DentistName: "Dr. Sarah Wilson", Status: models.AppointmentConfirmed},
		{ID: 2, PatientName: "Emma Williams", Time: "1:00 PM - 2:00 PM", Address: "201 Kufian No.21 Street", DentistName: "Dr. Michael Chen", Status: models.AppointmentPending},
		{ID: 3, PatientName: "David Johnson", Time: "3:15 PM - 4:15 PM", Address: "201 Kufian No.21 Street", DentistName: "Dr. Amanda Lee", Status: models.AppointmentConfirmed},
	}
}
