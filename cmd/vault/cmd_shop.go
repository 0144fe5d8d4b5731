package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List all products (no login needed)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, api, err := loadState()
		if err != nil {
			return err
		}
		products, err := api.Products(cmd.Context())
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNAME\tPRICE\tSTOCK")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\n", p.ID, p.Type, p.Name, p.Price, p.Stock)
		}
		return w.Flush()
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <product-id>",
	Short: "Buy one unit of a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number")
		}
		msg, err := api.Buy(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your purchase history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		orders, err := api.MyOrders(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("- %s (%.2f) [%s]\n", o.Product, o.Price, o.Status)
		}
		return nil
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <product-id>",
	Short: "Show reviews for a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, api, err := loadState()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number")
		}
		reviews, err := api.Reviews(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}
		for _, r := range reviews {
			fmt.Printf("- %s (%d/5): %s\n", r.Username, r.Rating, r.Comment)
		}
		return nil
	},
}

var reviewRating int

var reviewCmd = &cobra.Command{
	Use:   "review <product-id> <comment>",
	Short: "Leave a review for a product",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, api, err := loadState()
		if err != nil {
			return err
		}
		if err := requireLogin(sess); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("product id must be a number")
		}
		msg, err := api.AddReview(cmd.Context(), id, args[1], reviewRating)
		if err != nil {
			return err
		}
		fmt.Println(">>", msg)
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntVar(&reviewRating, "rating", 5, "rating from 1 to 5")
}
