package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fothel/collectorvault/internal/client"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the catalog (admin only)",
}

// adminHint refuses locally when the stored role is not admin. This is a
// UX shortcut only: the server enforces the role on every call.
func adminHint(sess *client.Session) error {
	if err := requireLogin(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return fmt.Errorf("access denied: this command is for administrators")
	}
	return nil
}

var (
	addType  string
	addPrice float64
	addStock int
)

var productAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a product to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := adminHint(sess); err != nil {
			return err
		}
		msg, err := api.CreateProduct(cmd.Context(), args[0], addType, addPrice, addStock)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

var (
	editName  string
	editType  string
	editPrice float64
	editStock int
)

var productEditCmd = &cobra.Command{
	Use:   "edit <product-id>",
	Short: "Edit product fields; only the flags you pass are changed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := adminHint(sess); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number")
		}

		var fields client.ProductFields
		if cmd.Flags().Changed("name") {
			fields.Name = &editName
		}
		if cmd.Flags().Changed("type") {
			fields.Type = &editType
		}
		if cmd.Flags().Changed("price") {
			fields.Price = &editPrice
		}
		if cmd.Flags().Changed("stock") {
			fields.Stock = &editStock
		}

		msg, err := api.UpdateProduct(cmd.Context(), id, fields)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

var productDelCmd = &cobra.Command{
	Use:   "del <product-id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := adminHint(sess); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number")
		}
		msg, err := api.DeleteProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

func init() {
	productAddCmd.Flags().StringVar(&addType, "type", "Card", "product type (Card, Figure, Funko)")
	productAddCmd.Flags().Float64Var(&addPrice, "price", 0, "product price")
	productAddCmd.Flags().IntVar(&addStock, "stock", 0, "initial stock")

	productEditCmd.Flags().StringVar(&editName, "name", "", "new name")
	productEditCmd.Flags().StringVar(&editType, "type", "", "new type")
	productEditCmd.Flags().Float64Var(&editPrice, "price", 0, "new price")
	productEditCmd.Flags().IntVar(&editStock, "stock", 0, "new stock")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productEditCmd)
	productCmd.AddCommand(productDelCmd)
}
