package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/application/services"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/pkg/display"
)

func recordsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage medical records",
	}

	var customerID, doctorID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List medical records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				records []entities.MedicalRecord
				err     error
			)
			switch {
			case customerID > 0:
				records, err = (*a).records.ListByCustomer(cmd.Context(), customerID)
			case doctorID > 0:
				records, err = (*a).records.ListByDoctor(cmd.Context(), doctorID)
			default:
				records, err = (*a).records.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printRecords((*a).out, records)
		},
	}
	list.Flags().Int64Var(&customerID, "customer", 0, "only this patient's records")
	list.Flags().Int64Var(&doctorID, "doctor", 0, "only records kept by this doctor")
	list.MarkFlagsMutuallyExclusive("customer", "doctor")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one medical record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			record, err := (*a).records.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := printRecords((*a).out, []entities.MedicalRecord{*record}); err != nil {
				return err
			}
			if record.TreatmentHistory != "" {
				fmt.Fprintf((*a).out, "\nTiền sử điều trị: %s\n", record.TreatmentHistory)
			}
			return nil
		},
	}

	var req entities.MedicalRecordRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a medical record",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := (*a).records.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf((*a).out, "Đã tạo hồ sơ #%d. CD4: %s, tải lượng virus: %s\n",
				record.MedicalRecordID,
				display.ClassifyCD4(record.CD4Count).Text,
				display.ClassifyViralLoad(record.ViralLoad).Text)
			return nil
		},
	}
	create.Flags().Int64Var(&req.CustomerID, "customer", 0, "patient id")
	create.Flags().Int64Var(&req.DoctorID, "doctor", 0, "doctor id")
	create.Flags().Float64Var(&req.CD4Count, "cd4", 0, "CD4 count (cells/mm³)")
	create.Flags().Float64Var(&req.ViralLoad, "viral-load", 0, "viral load (copies/mL)")
	create.Flags().StringVar(&req.TreatmentHistory, "history", "", "treatment history")

	cmd.AddCommand(list, get, create)
	return cmd
}

func plansCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage treatment plans",
	}

	var doctorID, recordID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List treatment plans with their medical records",
		RunE: func(cmd *cobra.Command, args []string) error {
			board := (*a).planBoard()
			var (
				rows []services.TreatmentPlanRow
				err  error
			)
			switch {
			case recordID > 0:
				rows, err = board.LoadForRecord(cmd.Context(), recordID)
			case doctorID > 0:
				rows, err = board.LoadForDoctor(cmd.Context(), doctorID)
			default:
				return fmt.Errorf("either --doctor or --record is required")
			}
			if err != nil {
				return errReported
			}

			tw := newTable((*a).out, "MÃ", "HỒ SƠ", "PHÁC ĐỒ", "ĐỐI TƯỢNG", "BẮT ĐẦU", "TRẠNG THÁI", "CD4", "TẢI LƯỢNG VIRUS")
			for _, r := range rows {
				cd4, vl := "-", "-"
				if r.Record != nil {
					cd4 = fmt.Sprintf("%.0f (%s)", r.Record.CD4Count, r.CD4.Text)
					vl = fmt.Sprintf("%.0f (%s)", r.Record.ViralLoad, r.ViralLoad.Text)
				}
				row(tw, r.Plan.PlanID, r.Plan.MedicalRecordID, r.Plan.ARVRegimen, r.Plan.ApplicableGroup,
					r.StartedOn, r.Status.Text, cd4, vl)
			}
			return tw.Flush()
		},
	}
	list.Flags().Int64Var(&doctorID, "doctor", 0, "plans supervised by this doctor")
	list.Flags().Int64Var(&recordID, "record", 0, "plans attached to this medical record")
	list.MarkFlagsMutuallyExclusive("doctor", "record")

	var req entities.TreatmentPlanRequest
	var status string
	create := &cobra.Command{
		Use:   "create",
		Short: "Start a treatment plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Status = entities.TreatmentPlanStatus(strings.ToUpper(status))
			if req.ApplicableGroup == "" {
				for _, r := range entities.ARVRegimenTemplates {
					if r.Code == req.ARVRegimen {
						req.ApplicableGroup = r.ApplicableGroup
					}
				}
			}
			return reported((*a).planBoard().Create(cmd.Context(), req))
		},
	}
	create.Flags().Int64Var(&req.MedicalRecordID, "record", 0, "medical record id")
	create.Flags().Int64Var(&req.DoctorID, "doctor", 0, "supervising doctor id")
	create.Flags().StringVar(&req.ARVRegimen, "regimen", "", "ARV regimen code, see 'plans regimens'")
	create.Flags().StringVar(&req.ApplicableGroup, "group", "", "patient group (defaults to the regimen's)")
	create.Flags().StringVar(&req.StartDate, "start", "", "start date, e.g. 2024-07-01")
	create.Flags().StringVar(&status, "status", "", "initial status (defaults to ACTIVE)")
	create.Flags().StringVar(&req.Note, "note", "", "note")

	setStatus := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a treatment plan's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st := entities.TreatmentPlanStatus(strings.ToUpper(args[1]))
			return reported((*a).planBoard().UpdateStatus(cmd.Context(), id, st))
		},
	}

	regimens := &cobra.Command{
		Use:   "regimens",
		Short: "List the ARV regimen templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTable((*a).out, "MÃ", "THÀNH PHẦN", "ĐỐI TƯỢNG")
			for _, r := range entities.ARVRegimenTemplates {
				row(tw, r.Code, r.Description, r.ApplicableGroup)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, create, setStatus, regimens)
	return cmd
}
