package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusNoShow    AppointmentStatus = "NO_SHOW"

	// Labels used by the staff and doctor boards; the backend may echo them.
	AppointmentStatusScheduled   AppointmentStatus = "SCHEDULED"
	AppointmentStatusInProgress  AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
)

// BackendAppointmentStatuses are the values the backend accepts in a
// status update.
var BackendAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCancelled,
	AppointmentStatusCompleted,
	AppointmentStatusNoShow,
}

// IsTerminal reports whether no further transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case AppointmentStatusCancelled, AppointmentStatusCompleted, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsValid reports whether s is a known status (backend or board label)
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled,
		AppointmentStatusCompleted, AppointmentStatusNoShow, AppointmentStatusScheduled,
		AppointmentStatusInProgress, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// AppointmentType is ONLINE/OFFLINE or a free-text consultation form
// such as "Video call".
type AppointmentType string

const (
	AppointmentTypeOnline  AppointmentType = "ONLINE"
	AppointmentTypeOffline AppointmentType = "OFFLINE"
)

// Appointment represents a booked consultation
type Appointment struct {
	AppointmentID int64             `json:"appointmentId"`
	CustomerID    int64             `json:"customerId"`
	DoctorID      int64             `json:"doctorId"`
	Type          AppointmentType   `json:"type"`
	Datetime      string            `json:"datetime"`
	Status        AppointmentStatus `json:"status"`
	Note          string            `json:"note"`
	CustomerName  string            `json:"customerName,omitempty"`
	DoctorName    string            `json:"doctorName,omitempty"`
}

// BookAppointmentRequest is the body of POST /appointment/book
type BookAppointmentRequest struct {
	CustomerID int64           `json:"customerId"`
	DoctorID   int64           `json:"doctorId"`
	Type       AppointmentType `json:"type"`
	Note       string          `json:"note"`
	Datetime   string          `json:"datetime"`
}

// UpdateAppointmentStatusRequest is the body of PUT /appointment/{id}/status
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status"`
}

// AppointmentSummary counts appointments by status for board headers
type AppointmentSummary struct {
	Total    int                       `json:"total"`
	ByStatus map[AppointmentStatus]int `json:"byStatus"`
}

// SummarizeAppointments counts the given list by status
func SummarizeAppointments(list []Appointment) AppointmentSummary {
	summary := AppointmentSummary{
		Total:    len(list),
		ByStatus: make(map[AppointmentStatus]int),
	}
	for _, a := range list {
		summary.ByStatus[a.Status]++
	}
	return summary
}
