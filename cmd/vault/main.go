package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fothel/collectorvault/internal/client"
)

var serverURL string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "CollectorVault: terminal client for the collectibles shop",
	Long:  "Browse the catalog, buy collectibles and manage the shop from the terminal.",
}

func init() {
	defaultURL := os.Getenv("VAULT_SERVER")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8080"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "shop server base URL")

	// Auth
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)

	// Shopping
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(reviewCmd)

	// Admin
	rootCmd.AddCommand(productCmd)
}

// loadState resolves the session file and builds an API client from it.
// Every command receives the session explicitly; there is no shared
// mutable login state in this package.
func loadState() (*client.Session, string, *client.Client, error) {
	path, err := client.DefaultSessionPath()
	if err != nil {
		return nil, "", nil, err
	}
	sess, err := client.LoadSession(path)
	if err != nil {
		return nil, "", nil, err
	}
	if sess.BaseURL == "" || rootCmd.PersistentFlags().Changed("server") {
		sess.BaseURL = serverURL
	}
	return sess, path, client.New(sess.BaseURL, sess.Token), nil
}

func requireLogin(sess *client.Session) error {
	if !sess.LoggedIn() {
		return fmt.Errorf("log in first: vault login <username> <password>")
	}
	return nil
}
