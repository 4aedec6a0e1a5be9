package dto

type DashboardStatisticsResponse struct {
	TotalClients          int64 `json:"totalClients"`
	TotalAppointments     int64 `json:"totalAppointments"`
	TotalPrograms         int64 `json:"totalPrograms"`
	TotalEnrollments      int64 `json:"totalEnrollments"`
	ActivePrograms        int64 `json:"activePrograms"`
	ScheduledAppointments int64 `json:"scheduledAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
	NoShowAppointments    int64 `json:"noShowAppointments"`
	ActiveEnrollments     int64 `json:"activeEnrollments"`
	CompletedEnrollments  int64 `json:"completedEnrollments"`
	PendingEnrollments    int64 `json:"pendingEnrollments"`
}
