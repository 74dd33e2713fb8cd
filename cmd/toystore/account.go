package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and cache the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("need --email and --password")
			}
			ctx, cancel := a.ctx()
			defer cancel()
			res, err := a.client.Login(ctx, email, password)
			if err != nil {
				return err
			}
			if err := a.tokens.Save(res.Token); err != nil {
				return err
			}
			fmt.Printf("logged in as %s\n", res.Customer.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || password == "" {
				return fmt.Errorf("need --name, --email and --password")
			}
			ctx, cancel := a.ctx()
			defer cancel()
			res, err := a.client.Register(ctx, name, email, password)
			if err != nil {
				return err
			}
			if err := a.tokens.Save(res.Token); err != nil {
				return err
			}
			fmt.Printf("welcome, %s\n", res.Customer.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the cached token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			u, err := a.client.Profile(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>", u.Name, u.Email)
			if u.IsAdmin {
				fmt.Print(" (admin)")
			}
			fmt.Println()
			return nil
		},
	}
}
