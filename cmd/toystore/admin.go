package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhtranvn/toystore/internal/api"
	"github.com/minhtranvn/toystore/internal/format"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "admin", Short: "Administrative console"}
	cmd.AddCommand(
		newAdminProductsCmd(a),
		newAdminOrdersCmd(a),
		newAdminCustomersCmd(a),
		newAdminPromosCmd(a),
		newAdminCarouselCmd(a),
	)
	return cmd
}

// productInputFlags binds the writable product fields.
type productInputFlags struct {
	name        string
	description string
	category    string
	price       float64
	stock       int
	minAge      string
	maxAge      string
	featured    bool
	image       string
}

func (f *productInputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.category, "category", "", "category slug")
	cmd.Flags().Float64Var(&f.price, "price", 0, "price in đồng")
	cmd.Flags().IntVar(&f.stock, "stock", 0, "count in stock")
	cmd.Flags().StringVar(&f.minAge, "min-age", "", "minimum age")
	cmd.Flags().StringVar(&f.maxAge, "max-age", "", "maximum age")
	cmd.Flags().BoolVar(&f.featured, "featured", false, "featured flag")
	cmd.Flags().StringVar(&f.image, "image", "", "image file to upload")
}

func (f *productInputFlags) input() api.ProductInput {
	return api.ProductInput{
		Name:         f.name,
		Description:  f.description,
		Category:     f.category,
		Price:        f.price,
		CountInStock: f.stock,
		AgeMin:       query.Age(f.minAge),
		AgeMax:       query.Age(f.maxAge),
		Featured:     f.featured,
	}
}

func newAdminProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Manage catalog products"}

	var cf productInputFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cf.name == "" || cf.price <= 0 {
				return fmt.Errorf("need --name and a positive --price")
			}
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.CreateProduct(ctx, cf.input(), cf.image)
			if err != nil {
				return err
			}
			fmt.Printf("created %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}
	cf.bind(create)

	var uf productInputFlags
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.UpdateProduct(ctx, args[0], uf.input(), uf.image)
			if err != nil {
				return err
			}
			fmt.Printf("updated %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}
	uf.bind(update)

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.DeleteProduct(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(create, update, rm)
	return cmd
}

func newAdminOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "orders", Short: "Manage orders"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListOrders(ctx, lf.params())
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

	deliver := &cobra.Command{
		Use:   "deliver <id>",
		Short: "Mark an order delivered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			o, err := a.client.MarkDelivered(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("order %s delivered\n", o.ID)
			return nil
		},
	}

	pay := &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark an order paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			o, err := a.client.MarkPaid(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("order %s paid, total %s\n", o.ID, format.VND(o.TotalPrice))
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.DeleteOrder(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, deliver, pay, rm)
	return cmd
}

func newAdminCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "Manage customer accounts"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListCustomers(ctx, lf.params())
			if err != nil {
				return err
			}
			renderCustomers(os.Stdout, page.Items)
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			renderPager(os.Stdout, query.NewWindow(page.Page, page.Pages, query.DefaultWindowSize))
			return nil
		},
	}
	lf.bind(list)

	var admin bool
	setRole := &cobra.Command{
		Use:   "set-role <id>",
		Short: "Grant or revoke admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			u, err := a.client.SetCustomerAdmin(ctx, args[0], admin)
			if err != nil {
				return err
			}
			fmt.Printf("%s admin=%v\n", u.Email, u.IsAdmin)
			return nil
		},
	}
	setRole.Flags().BoolVar(&admin, "admin", false, "admin flag")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.DeleteCustomer(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, setRole, rm)
	return cmd
}

func newAdminPromosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "promos", Short: "Manage promotions"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List promotions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListPromotions(ctx, lf.params())
			if err != nil {
				return err
			}
			for _, p := range page.Items {
				state := "inactive"
				if p.Active {
					state = "active"
				}
				val := format.VND(p.DiscountValue)
				if p.DiscountType == "percent" {
					val = format.Percent(p.DiscountValue)
				}
				fmt.Printf("%s  %s  -%s (min %s)  %s\n",
					p.ID, p.Code, val, format.VND(p.MinOrderValue), state)
			}
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			return nil
		},
	}
	lf.bind(list)

	var in api.PromotionInput
	var expires string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a promotion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Code == "" || in.DiscountValue <= 0 {
				return fmt.Errorf("need --code and a positive --value")
			}
			if expires != "" {
				in.ExpiresAt = &expires
			}
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.CreatePromotion(ctx, in)
			if err != nil {
				return err
			}
			fmt.Printf("created promotion %s (%s)\n", p.ID, p.Code)
			return nil
		},
	}
	create.Flags().StringVar(&in.Code, "code", "", "promo code")
	create.Flags().StringVar(&in.Description, "description", "", "description")
	create.Flags().StringVar(&in.DiscountType, "type", "percent", "discount type (percent|fixed)")
	create.Flags().Float64Var(&in.DiscountValue, "value", 0, "discount value")
	create.Flags().Float64Var(&in.MinOrderValue, "min-order", 0, "minimum order value")
	create.Flags().StringVar(&expires, "expires", "", "expiry (RFC 3339)")
	create.Flags().BoolVar(&in.Active, "active", true, "active flag")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a promotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.DeletePromotion(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("deleted", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, create, rm)
	return cmd
}

func newAdminCarouselCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "carousel", Short: "Manage the homepage carousel"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current slides",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			slides, err := a.client.Carousel(ctx)
			if err != nil {
				return err
			}
			for _, s := range slides {
				title := ""
				if s.Title != nil {
					title = *s.Title
				}
				fmt.Printf("%d. %s  %s\n", s.Order, s.Image, title)
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <slides.json>",
		Short: "Replace slides from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var slides []model.CarouselSlide
			if err := json.Unmarshal(b, &slides); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.SetCarousel(ctx, slides); err != nil {
				return err
			}
			fmt.Printf("carousel updated (%d slides)\n", len(slides))
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}
