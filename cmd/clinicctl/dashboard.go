package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/adapters/restapi"
	"github.com/zatekoja/hivclinic/pkg/display"
)

func dashboardCmd(a **app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := (*a).dashboardService().Load(cmd.Context(), limit)
			if snap == nil {
				return err
			}
			out := (*a).out

			if s := snap.Stats; s != nil {
				tw := newTable(out, "CHỈ SỐ", "GIÁ TRỊ")
				row(tw, "Bệnh nhân", s.TotalPatients)
				row(tw, "Bác sĩ", s.TotalDoctors)
				row(tw, "Nhân viên", s.TotalStaff)
				row(tw, "Lịch hẹn", s.TotalAppointments)
				row(tw, "Chờ xác nhận", s.PendingAppointments)
				row(tw, "Đã hoàn thành", s.CompletedAppointments)
				row(tw, "Phác đồ đang điều trị", s.ActiveTreatmentPlans)
				row(tw, "Doanh thu tháng", fmt.Sprintf("%.0f VNĐ", s.MonthlyRevenue))
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			if o := snap.Overview; o != nil {
				fmt.Fprintf(out, "Máy chủ: %s | CSDL: %s | Uptime: %s | Người dùng: %d | Sao lưu: %s\n\n",
					o.ServerStatus, o.DatabaseStatus, o.Uptime, o.ActiveUsers, display.FormatDateTime(o.LastBackup))
			}

			if len(snap.Activities) > 0 {
				tw := newTable(out, "THỜI GIAN", "LOẠI", "NGƯỜI DÙNG", "MÔ TẢ")
				for _, act := range snap.Activities {
					row(tw, display.FormatDateTime(act.Timestamp), act.Type, act.User, ellipsis(act.Description, 60))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", restapi.DefaultActivityLimit, "number of recent activities")
	return cmd
}
