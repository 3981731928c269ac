package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/application/services"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

func staffCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(staffListCmd(a), staffCreateCmd(a), staffUpdateCmd(a), staffDeleteCmd(a))
	return cmd
}

func staffListCmd(a **app) *cobra.Command {
	var (
		search   string
		gender   string
		active   bool
		inactive bool
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := (*a).staffService()
			defer svc.Close()

			filters := services.StaffFilters{Search: search, Gender: entities.Gender(gender)}
			switch {
			case active:
				v := true
				filters.Active = &v
			case inactive:
				v := false
				filters.Active = &v
			}
			if err := svc.ApplyFilters(cmd.Context(), filters); err != nil {
				return errReported
			}
			svc.SetPage(page, pageSize)

			if err := printStaff((*a).out, svc.Page()); err != nil {
				return err
			}
			state := svc.State()
			p := state.Pagination
			fmt.Fprintf((*a).out, "\nTrang %d (%d/trang), tổng %d nhân viên. Hoạt động: %d, ngừng: %d. Nam: %d, nữ: %d, khác: %d\n",
				p.Current, p.PageSize, p.Total,
				state.Stats.Active, state.Stats.Inactive,
				state.Stats.Male, state.Stats.Female, state.Stats.Other)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "match staff by name")
	cmd.Flags().StringVar(&gender, "gender", "", "Male, Female or Other")
	cmd.Flags().BoolVar(&active, "active", false, "only active staff")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "only deactivated staff")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", services.DefaultPageSize, "rows per page")
	cmd.MarkFlagsMutuallyExclusive("active", "inactive")
	return cmd
}

// staffFlags binds the staff request fields. defaultGender is empty for
// updates so an omitted --gender keeps the stored value.
func staffFlags(cmd *cobra.Command, req *entities.StaffRequest, gender *string, defaultGender entities.Gender) {
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(gender, "gender", string(defaultGender), "Male, Female or Other")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
}

func staffCreateCmd(a **app) *cobra.Command {
	var req entities.StaffRequest
	var gender string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a staff account and profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Gender = entities.Gender(gender)
			svc := (*a).staffService()
			defer svc.Close()
			return reported(svc.Create(cmd.Context(), req))
		},
	}
	staffFlags(cmd, &req, &gender, entities.GenderMale)
	return cmd
}

func staffUpdateCmd(a **app) *cobra.Command {
	var req entities.StaffRequest
	var gender string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a staff profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req.Gender = entities.Gender(gender)
			svc := (*a).staffService()
			defer svc.Close()
			return reported(svc.Update(cmd.Context(), id, req))
		},
	}
	staffFlags(cmd, &req, &gender, "")
	return cmd
}

func staffDeleteCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Deactivate a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc := (*a).staffService()
			defer svc.Close()
			return reported(svc.Delete(cmd.Context(), id))
		},
	}
}
