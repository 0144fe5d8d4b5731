package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerRole string

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, api, err := loadState()
		if err != nil {
			return err
		}
		msg, err := api.Register(cmd.Context(), args[0], args[1], registerRole)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, path, api, err := loadState()
		if err != nil {
			return err
		}
		token, role, err := api.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		sess.Token = token
		sess.Role = role
		sess.Username = args[0]
		if err := sess.Save(path); err != nil {
			return err
		}

		fmt.Printf(">> Logged in. Welcome %s (%s).\n", args[0], role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, path, _, err := loadState()
		if err != nil {
			return err
		}
		if err := sess.Clear(path); err != nil {
			return err
		}
		fmt.Println(">> Logged out.")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		p, err := api.Profile(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("ID:       %d\nUsername: %s\nRole:     %s\n", p.ID, p.Username, p.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", "user", "account role (user or admin)")
}
