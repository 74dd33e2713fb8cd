package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minhtranvn/toystore/internal/api"
	"github.com/minhtranvn/toystore/internal/format"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "cart", Short: "Manage the local cart"}

	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.GetProduct(ctx, args[0])
			if err != nil {
				return err
			}
			if !p.InStock() {
				return fmt.Errorf("%s is out of stock", p.Name)
			}
			if qty < 1 {
				qty = 1
			}

			lines, _ := a.cart.Get()
			found := false
			for i := range lines {
				if lines[i].ProductID == p.ID {
					lines[i].Qty += qty
					found = true
					break
				}
			}
			if !found {
				lines = append(lines, model.CartItem{
					ProductID: p.ID, Name: p.Name, Image: p.Image, Price: p.Price, Qty: qty,
				})
			}
			if err := a.cart.Set(lines); err != nil {
				a.log.Warn("cart not saved", zap.Error(err))
			}
			fmt.Printf("added %d × %s\n", qty, p.Name)
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity")

	rm := &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := a.cart.Get()
			kept := lines[:0]
			for _, l := range lines {
				if l.ProductID != args[0] {
					kept = append(kept, l)
				}
			}
			if err := a.cart.Set(kept); err != nil {
				a.log.Warn("cart not saved", zap.Error(err))
			}
			fmt.Printf("cart has %d lines\n", len(kept))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := a.cart.Get()
			if len(lines) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			var total float64
			for _, l := range lines {
				fmt.Printf("%d × %s  %s\n", l.Qty, l.Name, format.VND(l.Price*float64(l.Qty)))
				total += l.Price * float64(l.Qty)
			}
			if promo, ok := a.promo.Get(); ok {
				fmt.Printf("promo %s: -%s\n", promo.Code, format.VND(promo.DiscountAmount))
				total -= promo.DiscountAmount
			}
			fmt.Println(headerStyle.Render("total: " + format.VND(total)))
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cart.Clear(); err != nil {
				a.log.Warn("cart not cleared on disk", zap.Error(err))
			}
			fmt.Println("cart cleared")
			return nil
		},
	}

	cmd.AddCommand(add, rm, list, clear)
	return cmd
}

func newShippingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "shipping", Short: "Manage the saved shipping address"}

	var addr model.ShippingAddress
	set := &cobra.Command{
		Use:   "set",
		Short: "Save the shipping address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr.FullName == "" || addr.Address == "" || addr.City == "" || addr.Phone == "" {
				return fmt.Errorf("need --name, --address, --city and --phone")
			}
			if err := a.shipping.Set(addr); err != nil {
				a.log.Warn("address not saved", zap.Error(err))
			}
			fmt.Println("shipping address saved")
			return nil
		},
	}
	set.Flags().StringVar(&addr.FullName, "name", "", "recipient name")
	set.Flags().StringVar(&addr.Address, "address", "", "street address")
	set.Flags().StringVar(&addr.Ward, "ward", "", "ward")
	set.Flags().StringVar(&addr.District, "district", "", "district")
	set.Flags().StringVar(&addr.City, "city", "", "city")
	set.Flags().StringVar(&addr.Phone, "phone", "", "phone number")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the saved address",
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, ok := a.shipping.Get()
			if !ok {
				fmt.Println("no shipping address saved")
				return nil
			}
			fmt.Printf("%s, %s", cur.FullName, cur.Address)
			if cur.Ward != "" {
				fmt.Printf(", %s", cur.Ward)
			}
			if cur.District != "" {
				fmt.Printf(", %s", cur.District)
			}
			fmt.Printf(", %s — %s\n", cur.City, cur.Phone)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shipping.Clear(); err != nil {
				a.log.Warn("address not cleared on disk", zap.Error(err))
			}
			fmt.Println("shipping address cleared")
			return nil
		},
	}

	cmd.AddCommand(set, show, clear)
	return cmd
}

func newPromoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "promo", Short: "Apply a promotion code"}

	apply := &cobra.Command{
		Use:   "apply <code>",
		Short: "Validate a code against the current cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := a.cart.Get()
			var total float64
			for _, l := range lines {
				total += l.Price * float64(l.Qty)
			}

			ctx, cancel := a.ctx()
			defer cancel()
			promo, err := a.client.ValidatePromotion(ctx, args[0], total)
			if err != nil {
				return err
			}
			if err := a.promo.Set(promo); err != nil {
				a.log.Warn("promo not saved", zap.Error(err))
			}
			fmt.Printf("applied %s: -%s\n", promo.Code, format.VND(promo.DiscountAmount))
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Drop the applied code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promo.Clear(); err != nil {
				a.log.Warn("promo not cleared on disk", zap.Error(err))
			}
			fmt.Println("promo cleared")
			return nil
		},
	}

	cmd.AddCommand(apply, clear)
	return cmd
}

func newOrderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "order", Short: "Place and track orders"}

	var payment string
	place := &cobra.Command{
		Use:   "place",
		Short: "Check out the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, _ := a.cart.Get()
			if len(lines) == 0 {
				return fmt.Errorf("cart is empty")
			}
			addr, ok := a.shipping.Get()
			if !ok {
				return fmt.Errorf("no shipping address; run: toystore shipping set")
			}

			draft := api.OrderDraft{
				Items:           lines,
				ShippingAddress: addr,
				PaymentMethod:   payment,
			}
			if promo, ok := a.promo.Get(); ok {
				draft.PromoCode = promo.Code
			}

			ctx, cancel := a.ctx()
			defer cancel()
			order, err := a.client.PlaceOrder(ctx, draft)
			if err != nil {
				return err
			}

			// cart and promo are spent; clearing is best-effort
			if err := a.cart.Clear(); err != nil {
				a.log.Warn("cart not cleared on disk", zap.Error(err))
			}
			if err := a.promo.Clear(); err != nil {
				a.log.Warn("promo not cleared on disk", zap.Error(err))
			}

			fmt.Printf("order %s placed, total %s\n", order.ID, format.VND(order.TotalPrice))
			return nil
		},
	}
	place.Flags().StringVar(&payment, "payment", "cod", "payment method")

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListMyOrders(ctx, lf.params())
			if err != nil {
				return err
			}
			renderOrders(os.Stdout, page.Items)
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			renderPager(os.Stdout, query.NewWindow(page.Page, page.Pages, query.DefaultWindowSize))
			return nil
		},
	}
	lf.bind(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			o, err := a.client.GetOrder(ctx, args[0])
			if err != nil {
				return err
			}
			printOrder(o)
			return nil
		},
	}

	cmd.AddCommand(place, list, show)
	return cmd
}

func printOrder(o *model.Order) {
	fmt.Println(headerStyle.Render("order " + o.ID))
	for _, l := range o.Items {
		fmt.Printf("  %d × %s  %s\n", l.Qty, l.Name, format.VND(l.Price*float64(l.Qty)))
	}
	fmt.Println("items:   ", format.VND(o.ItemsPrice))
	fmt.Println("shipping:", format.VND(o.ShippingPrice))
	if o.DiscountAmount > 0 {
		fmt.Println("discount:", "-"+format.VND(o.DiscountAmount))
	}
	fmt.Println("total:   ", format.VND(o.TotalPrice))
	fmt.Println("paid:    ", yesNo(o.IsPaid))
	fmt.Println("delivered:", yesNo(o.IsDelivered))
	fmt.Printf("ship to:  %s, %s, %s — %s\n",
		o.ShippingAddress.FullName, o.ShippingAddress.Address, o.ShippingAddress.City, o.ShippingAddress.Phone)
}
