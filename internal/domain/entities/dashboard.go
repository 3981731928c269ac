package entities

// DashboardStats are the admin dashboard counters
type DashboardStats struct {
	TotalPatients         int     `json:"totalPatients"`
	TotalDoctors          int     `json:"totalDoctors"`
	TotalStaff            int     `json:"totalStaff"`
	TotalAppointments     int     `json:"totalAppointments"`
	PendingAppointments   int     `json:"pendingAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	ActiveTreatmentPlans  int     `json:"activeTreatmentPlans"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
}

// Activity is one line of the recent activity feed
type Activity struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	User        string `json:"user"`
	Timestamp   string `json:"timestamp"`
}

// SystemOverview reports backend health for the admin dashboard
type SystemOverview struct {
	ServerStatus   string `json:"serverStatus"`
	DatabaseStatus string `json:"databaseStatus"`
	Uptime         string `json:"uptime"`
	ActiveUsers    int    `json:"activeUsers"`
	LastBackup     string `json:"lastBackup"`
}
