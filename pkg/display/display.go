// Package display renders domain values for clinic staff: Vietnamese
// labels, tag colours and dd/mm/yyyy dates.
package display

import (
	"strings"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

// Tag colours used by status badges
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorCyan   = "cyan"
	ColorPurple = "purple"
	ColorGray   = "default"
)

var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Label is a display string with its badge colour
type Label struct {
	Text  string
	Color string
}

func parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO date or datetime as dd/mm/yyyy. Unparseable
// input is returned unchanged.
func FormatDate(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}
	return t.Format(DateLayout)
}

// FormatDateTime renders an ISO datetime as dd/mm/yyyy hh:mm. Unparseable
// input is returned unchanged.
func FormatDateTime(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}
	return t.Format(DateTimeLayout)
}

var appointmentLabels = map[entities.AppointmentStatus]Label{
	entities.AppointmentStatusPending:     {"Chờ xác nhận", ColorOrange},
	entities.AppointmentStatusConfirmed:   {"Đã xác nhận", ColorBlue},
	entities.AppointmentStatusCancelled:   {"Đã hủy", ColorRed},
	entities.AppointmentStatusCompleted:   {"Hoàn thành", ColorGreen},
	entities.AppointmentStatusNoShow:      {"Không đến", ColorGray},
	entities.AppointmentStatusScheduled:   {"Đã lên lịch", ColorCyan},
	entities.AppointmentStatusInProgress:  {"Đang khám", ColorPurple},
	entities.AppointmentStatusRescheduled: {"Đã dời lịch", ColorOrange},
}

// AppointmentStatusLabel returns the label for an appointment status.
// Unknown statuses are shown verbatim.
func AppointmentStatusLabel(s entities.AppointmentStatus) Label {
	if l, ok := appointmentLabels[s]; ok {
		return l
	}
	return Label{Text: string(s), Color: ColorGray}
}

var planLabels = map[entities.TreatmentPlanStatus]Label{
	entities.TreatmentPlanStatusActive:       {"Đang điều trị", ColorGreen},
	entities.TreatmentPlanStatusPaused:       {"Tạm dừng", ColorOrange},
	entities.TreatmentPlanStatusCompleted:    {"Hoàn thành", ColorBlue},
	entities.TreatmentPlanStatusDiscontinued: {"Ngừng điều trị", ColorRed},
}

// TreatmentPlanStatusLabel returns the label for a plan status
func TreatmentPlanStatusLabel(s entities.TreatmentPlanStatus) Label {
	if l, ok := planLabels[s]; ok {
		return l
	}
	return Label{Text: string(s), Color: ColorGray}
}

// GenderLabel returns the Vietnamese gender name
func GenderLabel(g entities.Gender) string {
	switch g {
	case entities.GenderMale:
		return "Nam"
	case entities.GenderFemale:
		return "Nữ"
	default:
		return "Khác"
	}
}

// ActiveLabel renders the soft-delete flag
func ActiveLabel(deleted bool) Label {
	if deleted {
		return Label{Text: "Ngừng hoạt động", Color: ColorRed}
	}
	return Label{Text: "Hoạt động", Color: ColorGreen}
}

// ClassifyCD4 grades a CD4 count (cells/mm³)
func ClassifyCD4(count float64) Label {
	switch {
	case count >= 500:
		return Label{Text: "Bình thường", Color: ColorGreen}
	case count >= 200:
		return Label{Text: "Thấp", Color: ColorOrange}
	default:
		return Label{Text: "Rất thấp", Color: ColorRed}
	}
}

// ClassifyViralLoad grades a viral load (copies/mL)
func ClassifyViralLoad(load float64) Label {
	switch {
	case load < 50:
		return Label{Text: "Không phát hiện", Color: ColorGreen}
	case load < 1000:
		return Label{Text: "Thấp", Color: ColorOrange}
	default:
		return Label{Text: "Cao", Color: ColorRed}
	}
}
