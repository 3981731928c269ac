package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/adapters/session"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

func loginCmd(a **app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("CLINIC_PASSWORD")
			}
			res, err := (*a).auth.Login(cmd.Context(), entities.LoginRequest{Username: username, Password: password})
			if err != nil {
				return err
			}
			name := res.FullName
			if name == "" {
				name = username
			}
			fmt.Fprintf((*a).out, "Đăng nhập thành công: %s (%s)\n", name, res.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (defaults to $CLINIC_PASSWORD)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func logoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln((*a).out, "Đã đăng xuất")
			return nil
		},
	}
}

func whoamiCmd(a **app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if remote {
				profile, err := (*a).auth.Profile(ctx)
				if err != nil {
					return err
				}
				return printUser((*a).out, profile)
			}

			info, err := (*a).session.UserInfo(ctx)
			if err != nil {
				return err
			}
			if info == nil {
				id, err := session.CurrentUserID(ctx, (*a).session)
				if err != nil {
					return err
				}
				info = &entities.UserInfo{UserID: id}
			}
			return printUser((*a).out, info)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "ask the backend instead of the cached session")
	return cmd
}
