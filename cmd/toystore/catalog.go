package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minhtranvn/toystore/internal/format"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/opstate"
	"github.com/minhtranvn/toystore/internal/query"
)

// listFlags binds the shared filter/sort/page flags onto a command and
// assembles ListParams from them.
type listFlags struct {
	page     int
	keyword  string
	category string
	sortBy   string
	order    string
	minPrice string
	maxPrice string
	minAge   string
	maxAge   string
	featured bool
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "free-text filter")
	cmd.Flags().StringVar(&f.category, "category", "", "category slug")
	cmd.Flags().StringVar(&f.sortBy, "sort", "createdAt", "sort field (createdAt|price|name|rating)")
	cmd.Flags().StringVar(&f.order, "order", "DESC", "sort order (ASC|DESC)")
	cmd.Flags().StringVar(&f.minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&f.maxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&f.minAge, "min-age", "", "minimum age")
	cmd.Flags().StringVar(&f.maxAge, "max-age", "", "maximum age")
	cmd.Flags().BoolVar(&f.featured, "featured", false, "featured products only")
}

func (f *listFlags) params() query.ListParams {
	return query.ListParams{
		Page:      f.page,
		Keyword:   f.keyword,
		Category:  f.category,
		SortBy:    query.SortField(f.sortBy),
		SortOrder: query.SortOrder(strings.ToUpper(f.order)),
		MinPrice:  query.Number(f.minPrice),
		MaxPrice:  query.Number(f.maxPrice),
		MinAge:    query.Age(f.minAge),
		MaxAge:    query.Age(f.maxAge),
		Featured:  f.featured,
	}
}

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Browse the catalog"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List one catalog page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListProducts(ctx, lf.params())
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, page.Items, a.wishlist.Has)
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			renderPager(os.Stdout, query.NewWindow(page.Page, page.Pages, query.DefaultWindowSize))
			return nil
		},
	}
	lf.bind(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.GetProduct(ctx, args[0])
			if err != nil {
				return err
			}
			printProduct(p, a.wishlist.Has(p.ID))
			return nil
		},
	}

	top := &cobra.Command{
		Use:   "top",
		Short: "Highest-rated products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			items, err := a.client.TopProducts(ctx)
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, items, a.wishlist.Has)
			return nil
		},
	}

	var ff listFlags
	featured := &cobra.Command{
		Use:   "featured",
		Short: "Featured products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			params := ff.params()
			params.Featured = true
			page, err := a.client.ListProducts(ctx, params)
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, page.Items, a.wishlist.Has)
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			renderPager(os.Stdout, query.NewWindow(page.Page, page.Pages, query.DefaultWindowSize))
			return nil
		},
	}
	ff.bind(featured)

	var rating float64
	var comment string
	review := &cobra.Command{
		Use:   "review <id>",
		Short: "Leave a product review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.CreateReview(ctx, args[0], rating, comment); err != nil {
				return err
			}
			fmt.Println("review submitted")
			return nil
		},
	}
	review.Flags().Float64Var(&rating, "rating", 5, "rating 1-5")
	review.Flags().StringVar(&comment, "comment", "", "review text")

	var bf listFlags
	browse := &cobra.Command{
		Use:   "browse",
		Short: "Interactive catalog pager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.browseProducts(bf.params())
		},
	}
	bf.bind(browse)

	cmd.AddCommand(list, show, top, featured, review, browse)
	return cmd
}

// browseProducts runs the interactive pager. Every fetch goes through the
// operation lifecycle, so a failed or slow refetch keeps the previous
// page on screen with the error shown alongside.
func (a *app) browseProducts(params query.ListParams) error {
	op := &opstate.Operation[query.Paged[model.Product]]{}

	refetch := func() {
		ctx, cancel := a.ctx()
		defer cancel()
		_, _ = op.Run(ctx, func(ctx context.Context) (query.Paged[model.Product], error) {
			return a.client.ListProducts(ctx, params)
		})
	}

	refetch()
	a.renderBrowse(op)

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("browse> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		snap := op.Snapshot()
		switch {
		case line == "q" || line == "quit":
			return nil
		case line == "n":
			if snap.HasData && snap.Data.Page < snap.Data.Pages {
				params.Page = snap.Data.Page + 1
				refetch()
			}
		case line == "p":
			if snap.HasData && snap.Data.Page > 1 {
				params.Page = snap.Data.Page - 1
				refetch()
			}
		case strings.HasPrefix(line, "g "):
			if n, err := strconv.Atoi(strings.TrimSpace(line[2:])); err == nil && n >= 1 {
				params.Page = n
				refetch()
			}
		case strings.HasPrefix(line, "f "):
			params.Keyword = strings.TrimSpace(line[2:])
			params.Page = 1
			refetch()
		case line == "r":
			refetch()
		case line == "":
		default:
			fmt.Println("commands: n(ext) p(rev) g <page> f <keyword> r(eload) q(uit)")
		}
		a.renderBrowse(op)
		fmt.Print("browse> ")
	}
	return sc.Err()
}

func (a *app) renderBrowse(op *opstate.Operation[query.Paged[model.Product]]) {
	snap := op.Snapshot()
	if snap.HasData {
		renderProducts(os.Stdout, snap.Data.Items, a.wishlist.Has)
		renderPageSummary(os.Stdout, snap.Data.Page, snap.Data.Pages, snap.Data.Total)
		renderPager(os.Stdout, query.NewWindow(snap.Data.Page, snap.Data.Pages, query.DefaultWindowSize))
	}
	switch snap.Status {
	case opstate.Pending:
		fmt.Println(faintStyle.Render("loading..."))
	case opstate.Rejected:
		fmt.Println(errorStyle.Render("error: " + snap.Err))
	}
}

func printProduct(p *model.Product, wishlisted bool) {
	fmt.Println(headerStyle.Render(p.Name))
	if wishlisted {
		fmt.Println("♥ in wishlist")
	}
	fmt.Println("id:      ", p.ID)
	fmt.Println("price:   ", format.VND(p.Price))
	if p.Category != nil {
		fmt.Println("category:", *p.Category)
	}
	if p.Rating != nil {
		fmt.Printf("rating:   %s (%d reviews)\n", format.Stars(*p.Rating), p.NumReviews)
	}
	if p.AgeMin != nil || p.AgeMax != nil {
		fmt.Println("ages:    ", ageRange(p.AgeMin, p.AgeMax))
	}
	if p.InStock() {
		fmt.Println("stock:   ", p.CountInStock)
	} else {
		fmt.Println("stock:   ", errorStyle.Render("out of stock"))
	}
	if p.Description != nil {
		fmt.Println()
		fmt.Println(*p.Description)
	}
}

func ageRange(lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%d-%d", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("%d+", *lo)
	case hi != nil:
		return fmt.Sprintf("up to %d", *hi)
	default:
		return "any"
	}
}

func newPostsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "posts", Short: "Read the blog"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List one blog page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			page, err := a.client.ListPosts(ctx, lf.params())
			if err != nil {
				return err
			}
			renderPosts(os.Stdout, page.Items)
			renderPageSummary(os.Stdout, page.Page, page.Pages, page.Total)
			renderPager(os.Stdout, query.NewWindow(page.Page, page.Pages, query.DefaultWindowSize))
			return nil
		},
	}
	lf.bind(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()
			p, err := a.client.GetPost(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(headerStyle.Render(p.Title))
			if p.CreatedAt != nil {
				fmt.Println(faintStyle.Render(p.CreatedAt.Format("2006-01-02")))
			}
			if p.Content != nil {
				fmt.Println()
				fmt.Println(*p.Content)
			}
			return nil
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
