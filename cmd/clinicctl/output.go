package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/pkg/display"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...interface{}) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// ellipsis collapses whitespace and cuts s to at most limit runes
func ellipsis(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit < 1 {
		return ""
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:limit-1]), " ") + "…"
}

func printUser(w io.Writer, u *entities.UserInfo) error {
	tw := newTable(w, "MÃ", "HỌ TÊN", "EMAIL", "VAI TRÒ", "MÃ NHÂN VIÊN")
	staffID := ""
	if u.StaffID != 0 {
		staffID = fmt.Sprint(u.StaffID)
	}
	row(tw, u.UserID, u.FullName, u.Email, u.Role, staffID)
	return tw.Flush()
}

func printAppointments(w io.Writer, list []entities.Appointment) error {
	tw := newTable(w, "MÃ", "BỆNH NHÂN", "BÁC SĨ", "HÌNH THỨC", "THỜI GIAN", "TRẠNG THÁI", "GHI CHÚ")
	for _, ap := range list {
		patient := ap.CustomerName
		if patient == "" {
			patient = fmt.Sprint(ap.CustomerID)
		}
		doctor := ap.DoctorName
		if doctor == "" {
			doctor = fmt.Sprint(ap.DoctorID)
		}
		row(tw, ap.AppointmentID, patient, doctor, ap.Type,
			display.FormatDateTime(ap.Datetime),
			display.AppointmentStatusLabel(ap.Status).Text,
			ellipsis(ap.Note, 40))
	}
	return tw.Flush()
}

func printBlogs(w io.Writer, list []entities.Blog) error {
	tw := newTable(w, "MÃ", "TIÊU ĐỀ", "TÁC GIẢ", "NGÀY ĐĂNG")
	for _, b := range list {
		row(tw, b.BlogID, ellipsis(b.Title, 50), b.StaffName, display.FormatDate(b.CreateDate))
	}
	return tw.Flush()
}

func printEducation(w io.Writer, list []entities.EducationContent) error {
	tw := newTable(w, "MÃ", "TIÊU ĐỀ", "TÁC GIẢ", "NGÀY TẠO")
	for _, c := range list {
		row(tw, c.PostID, ellipsis(c.Title, 50), c.StaffName, display.FormatDate(c.CreatedAt))
	}
	return tw.Flush()
}

func printStaff(w io.Writer, list []entities.Staff) error {
	tw := newTable(w, "MÃ", "HỌ TÊN", "EMAIL", "ĐIỆN THOẠI", "GIỚI TÍNH", "TRẠNG THÁI")
	for _, s := range list {
		row(tw, s.StaffID, s.Name, s.Email, s.Phone, display.GenderLabel(s.Gender), display.ActiveLabel(s.IsDeleted).Text)
	}
	return tw.Flush()
}

func printRecords(w io.Writer, list []entities.MedicalRecord) error {
	tw := newTable(w, "MÃ", "BỆNH NHÂN", "BÁC SĨ", "CD4", "TẢI LƯỢNG VIRUS", "NGÀY TẠO")
	for _, r := range list {
		patient := r.CustomerName
		if patient == "" {
			patient = fmt.Sprint(r.CustomerID)
		}
		row(tw, r.MedicalRecordID, patient, r.DoctorID,
			fmt.Sprintf("%.0f (%s)", r.CD4Count, display.ClassifyCD4(r.CD4Count).Text),
			fmt.Sprintf("%.0f (%s)", r.ViralLoad, display.ClassifyViralLoad(r.ViralLoad).Text),
			display.FormatDate(r.CreatedAt))
	}
	return tw.Flush()
}
