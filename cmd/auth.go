package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/session"
	"github.com/chrisdamba/foodadmin/internal/validate"
)

func loginCmd(a *App) *cobra.Command {
	var creds models.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an admin and keep the session for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ask(&creds.Email, "Email:"); err != nil {
				return err
			}
			if err := a.ask(&creds.Password, "Password:"); err != nil {
				return err
			}
			if err := validate.Struct(&creds); err != nil {
				return err
			}
			res, err := a.client.Login(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("login failed: %s", api.Message(err, "Login failed. Please try again."))
			}
			return a.begin(res)
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "admin password (asked for when omitted)")
	return cmd
}

func registerCmd(a *App) *cobra.Command {
	var reg models.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an admin account and log in with it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, field := range []struct {
				value  *string
				prompt string
			}{
				{&reg.Name, "Name:"},
				{&reg.Surname, "Surname:"},
				{&reg.Email, "Email:"},
				{&reg.Password, "Password:"},
				{&reg.ConfirmPassword, "Confirm password:"},
			} {
				if err := a.ask(field.value, field.prompt); err != nil {
					return err
				}
			}
			if err := validate.Struct(&reg); err != nil {
				return err
			}
			res, err := a.client.Register(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("registration failed: %s", api.Message(err, "Registration failed. Please try again."))
			}
			return a.begin(res)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&reg.Name, "name", "", "first name")
	flags.StringVar(&reg.Surname, "surname", "", "surname")
	flags.StringVar(&reg.Email, "email", "", "email")
	flags.StringVar(&reg.Password, "password", "", "password, at least 6 characters")
	flags.StringVar(&reg.ConfirmPassword, "confirm-password", "", "the password again")
	return cmd
}

func (a *App) begin(res *api.AuthResult) error {
	if err := a.sessions.Begin(session.Session{Token: res.Token, Admin: res.Admin}); err != nil {
		return err
	}
	a.log.Info("session started", "admin", res.Admin.Email)
	fmt.Fprintf(a.out, "Logged in as %s\n", adminLine(res.Admin))
	return nil
}

func logoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.End(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func whoamiCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Verify the session with the API and show the logged-in admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := a.client.Verify(cmd.Context())
			if err != nil {
				if errors.Is(err, api.ErrNoSession) {
					return err
				}
				a.log.Warn("token verification failed", "error", err)
				if err := a.sessions.End(); err != nil {
					return err
				}
				return fmt.Errorf("session is no longer valid (%s); log in again", api.Message(err, "verification failed"))
			}
			if a.output == "json" {
				return writeJSON(a.out, admin)
			}
			fmt.Fprintln(a.out, adminLine(*admin))
			return nil
		},
	}
}

func adminLine(admin models.Admin) string {
	name := strings.TrimSpace(admin.Name + " " + admin.Surname)
	if name == "" {
		return admin.Email
	}
	return fmt.Sprintf("%s <%s>", name, admin.Email)
}
