package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
)

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "wishlist", Short: "Manage the local wishlist"}

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// persistence failure is non-critical for a wishlist; log and go on
			if err := a.wishlist.Add(args[0]); err != nil {
				a.log.Warn("wishlist not saved", zap.Error(err))
			}
			fmt.Printf("saved (%d items)\n", a.wishlist.Len())
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.wishlist.Remove(args[0]); err != nil {
				a.log.Warn("wishlist not saved", zap.Error(err))
			}
			fmt.Printf("removed (%d items)\n", a.wishlist.Len())
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show saved products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := a.wishlist.IDs()
			if len(ids) == 0 {
				fmt.Println("wishlist is empty")
				return nil
			}
			ctx, cancel := a.ctx()
			defer cancel()

			var items []model.Product
			for _, id := range ids {
				p, err := a.client.GetProduct(ctx, id)
				if err != nil {
					if errors.Is(err, errs.ErrNotFound) {
						// product gone from the catalog; show the bare id
						items = append(items, model.Product{ID: id, Name: "(no longer available)"})
						continue
					}
					return err
				}
				items = append(items, *p)
			}
			renderProducts(os.Stdout, items, a.wishlist.Has)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.wishlist.Clear(); err != nil {
				a.log.Warn("wishlist not cleared on disk", zap.Error(err))
			}
			fmt.Println("wishlist cleared")
			return nil
		},
	}

	cmd.AddCommand(add, rm, list, clear)
	return cmd
}
