package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/application/services"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/pkg/display"
)

func appointmentsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appt"},
		Short:   "List, book and update appointments",
	}
	cmd.AddCommand(appointmentsListCmd(a), appointmentsBookCmd(a), appointmentsStatusCmd(a), appointmentsCancelCmd(a))
	return cmd
}

func appointmentsListCmd(a **app) *cobra.Command {
	var (
		doctorID int64
		status   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			board := (*a).appointmentBoard()
			filter := services.AppointmentFilter{
				DoctorID: doctorID,
				Status:   entities.AppointmentStatus(strings.ToUpper(status)),
			}
			if err := board.SetFilter(cmd.Context(), filter); err != nil {
				return errReported
			}

			snap := board.Board()
			if err := printAppointments((*a).out, snap.Appointments); err != nil {
				return err
			}

			statuses := make([]string, 0, len(snap.Summary.ByStatus))
			for s := range snap.Summary.ByStatus {
				statuses = append(statuses, string(s))
			}
			sort.Strings(statuses)
			parts := make([]string, 0, len(statuses))
			for _, s := range statuses {
				st := entities.AppointmentStatus(s)
				parts = append(parts, fmt.Sprintf("%s: %d", display.AppointmentStatusLabel(st).Text, snap.Summary.ByStatus[st]))
			}
			fmt.Fprintf((*a).out, "\nTổng cộng %d lịch hẹn. %s\n", snap.Summary.Total, strings.Join(parts, ", "))
			return nil
		},
	}
	cmd.Flags().Int64Var(&doctorID, "doctor", 0, "only this doctor's appointments")
	cmd.Flags().StringVar(&status, "status", "", "only appointments in this status")
	return cmd
}

func appointmentsBookCmd(a **app) *cobra.Command {
	var req entities.BookAppointmentRequest
	var apptType string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = entities.AppointmentType(apptType)
			return reported((*a).appointmentBoard().Book(cmd.Context(), req))
		},
	}
	cmd.Flags().Int64Var(&req.CustomerID, "customer", 0, "patient id")
	cmd.Flags().Int64Var(&req.DoctorID, "doctor", 0, "doctor id")
	cmd.Flags().StringVar(&apptType, "type", string(entities.AppointmentTypeOffline), "ONLINE, OFFLINE or a consultation form")
	cmd.Flags().StringVar(&req.Datetime, "at", "", "appointment time, e.g. 2024-07-10T09:30:00")
	cmd.Flags().StringVar(&req.Note, "note", "", "note for the doctor")
	return cmd
}

func appointmentsStatusCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change an appointment's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := entities.AppointmentStatus(strings.ToUpper(args[1]))
			return reported((*a).appointmentBoard().UpdateStatus(cmd.Context(), id, status))
		},
	}
}

func appointmentsCancelCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reported((*a).appointmentBoard().Cancel(cmd.Context(), id))
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
