package restapi

import (
	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// Sample payloads served by the fallback policy. Each function returns a
// fresh copy so callers may mutate the result.

func sampleAppointments() []entities.Appointment {
	return []entities.Appointment{
		{AppointmentID: 1, CustomerID: 101, DoctorID: 2, Type: entities.AppointmentTypeOnline, Datetime: "2024-07-01T09:00:00", Status: entities.AppointmentStatusConfirmed, Note: "Tái khám định kỳ", CustomerName: "Nguyễn Văn An", DoctorName: "BS. Trần Thị Bình"},
		{AppointmentID: 2, CustomerID: 102, DoctorID: 3, Type: entities.AppointmentTypeOffline, Datetime: "2024-07-01T10:30:00", Status: entities.AppointmentStatusPending, Note: "Tư vấn xét nghiệm CD4", CustomerName: "Lê Thị Cúc", DoctorName: "BS. Phạm Minh Đức"},
		{AppointmentID: 3, CustomerID: 103, DoctorID: 2, Type: entities.AppointmentTypeOffline, Datetime: "2024-07-02T14:00:00", Status: entities.AppointmentStatusCompleted, Note: "Nhận thuốc ARV", CustomerName: "Hoàng Văn Em", DoctorName: "BS. Trần Thị Bình"},
		{AppointmentID: 4, CustomerID: 104, DoctorID: 3, Type: entities.AppointmentTypeOnline, Datetime: "2024-07-03T08:00:00", Status: entities.AppointmentStatusCancelled, Note: "Bệnh nhân bận", CustomerName: "Vũ Thị Giang", DoctorName: "BS. Phạm Minh Đức"},
	}
}

func sampleBlogs() []entities.Blog {
	return []entities.Blog{
		{BlogID: 1, Title: "Hiểu đúng về HIV và AIDS", Content: "HIV là virus gây suy giảm miễn dịch ở người. Điều trị ARV sớm giúp người nhiễm sống khỏe mạnh.", StaffID: 1, StaffName: "Nguyễn Thị Lan", CreateDate: "2024-06-15"},
		{BlogID: 2, Title: "U=U: Không phát hiện bằng không lây truyền", Content: "Người có tải lượng virus dưới ngưỡng phát hiện không lây truyền HIV qua đường tình dục.", StaffID: 2, StaffName: "Trần Văn Hùng", CreateDate: "2024-06-20"},
		{BlogID: 3, Title: "Lịch xét nghiệm định kỳ cho người điều trị ARV", Content: "Xét nghiệm tải lượng virus nên được thực hiện sau 6 tháng và 12 tháng điều trị, sau đó mỗi năm một lần.", StaffID: 1, StaffName: "Nguyễn Thị Lan", CreateDate: "2024-06-28"},
	}
}

func sampleEducationContents() []entities.EducationContent {
	return []entities.EducationContent{
		{PostID: 1, Title: "Tuân thủ điều trị ARV", Content: "Uống thuốc đúng giờ mỗi ngày giúp duy trì tải lượng virus dưới ngưỡng phát hiện.", StaffID: 1, StaffName: "Nguyễn Thị Lan", CreatedAt: "2024-05-10T08:00:00"},
		{PostID: 2, Title: "Dinh dưỡng cho người sống chung với HIV", Content: "Chế độ ăn cân bằng giúp tăng cường hệ miễn dịch.", StaffID: 2, StaffName: "Trần Văn Hùng", CreatedAt: "2024-05-22T09:30:00"},
		{PostID: 3, Title: "Dự phòng trước phơi nhiễm (PrEP)", Content: "PrEP giảm hơn 90% nguy cơ nhiễm HIV khi sử dụng đúng cách.", StaffID: 1, StaffName: "Nguyễn Thị Lan", CreatedAt: "2024-06-01T14:00:00"},
	}
}

func sampleDashboardStats() *entities.DashboardStats {
	return &entities.DashboardStats{
		TotalPatients:         1250,
		TotalDoctors:          15,
		TotalStaff:            32,
		TotalAppointments:     340,
		PendingAppointments:   28,
		CompletedAppointments: 290,
		ActiveTreatmentPlans:  860,
		MonthlyRevenue:        125000000,
	}
}

func sampleActivities() []entities.Activity {
	return []entities.Activity{
		{ID: 1, Type: "appointment", Description: "Lịch hẹn mới được đặt", User: "Nguyễn Văn An", Timestamp: "2024-07-01T08:45:00"},
		{ID: 2, Type: "medical_record", Description: "Cập nhật kết quả xét nghiệm CD4", User: "BS. Trần Thị Bình", Timestamp: "2024-07-01T08:30:00"},
		{ID: 3, Type: "treatment_plan", Description: "Tạo phác đồ điều trị TDF/3TC/DTG", User: "BS. Phạm Minh Đức", Timestamp: "2024-07-01T08:10:00"},
		{ID: 4, Type: "blog", Description: "Đăng bài viết mới", User: "Nguyễn Thị Lan", Timestamp: "2024-06-30T16:20:00"},
		{ID: 5, Type: "staff", Description: "Thêm nhân viên mới", User: "Quản trị viên", Timestamp: "2024-06-30T10:00:00"},
	}
}

func sampleSystemOverview() *entities.SystemOverview {
	return &entities.SystemOverview{
		ServerStatus:   "online",
		DatabaseStatus: "healthy",
		Uptime:         "99.9%",
		ActiveUsers:    45,
		LastBackup:     "2024-07-01T02:00:00",
	}
}

func sampleStaff() []entities.Staff {
	return []entities.Staff{
		{StaffID: 1, Name: "Nguyễn Thị Lan", Email: "lan.nguyen@hivclinic.vn", Phone: "0912345678", Gender: entities.GenderFemale},
		{StaffID: 2, Name: "Trần Văn Hùng", Email: "hung.tran@hivclinic.vn", Phone: "0987654321", Gender: entities.GenderMale},
		{StaffID: 3, Name: "Lê Thị Mai", Email: "mai.le@hivclinic.vn", Phone: "0356789012", Gender: entities.GenderFemale},
		{StaffID: 4, Name: "Phạm Quốc Bảo", Email: "bao.pham@hivclinic.vn", Phone: "0778901234", Gender: entities.GenderMale, IsDeleted: true},
	}
}
