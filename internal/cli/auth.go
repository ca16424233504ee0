package cli

import (
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/spf13/cobra"
)

func (c *client) registerCmd() *cobra.Command {
	var request models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.adapter.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&request.Username, "username", "u", "", "username")
	flags.StringVarP(&request.Password, "password", "p", "", "password")
	flags.StringVar(&request.Email, "email", "", "email address")
	flags.StringVar(&request.FirstName, "first-name", "", "first name")
	flags.StringVar(&request.LastName, "last-name", "", "last name")

	return cmd
}

func (c *client) loginCmd() *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token for an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.adapter.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&request.Username, "username", "u", "", "username")
	flags.StringVarP(&request.Password, "password", "p", "", "password")

	return cmd
}

func (c *client) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.adapter.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(user)
		},
	}
}

func (c *client) homeCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Call the greeting endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.adapter.Home(cmd.Context(), name)
			if err != nil {
				return err
			}
			return c.print(resp)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "name to greet")

	return cmd
}
