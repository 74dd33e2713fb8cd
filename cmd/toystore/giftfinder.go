package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhtranvn/toystore/internal/format"
	"github.com/minhtranvn/toystore/internal/giftfinder"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

func newGiftCmd(a *app) *cobra.Command {
	var (
		age       int
		budget    float64
		interests []string
		keyword   string
		limit     int
		pages     int
	)
	cmd := &cobra.Command{
		Use:   "giftfinder",
		Short: "Suggest gifts for a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx()
			defer cancel()

			params := query.ListParams{Keyword: keyword}
			if age > 0 {
				y := age
				params.MinAge = &y
				params.MaxAge = &y
			}
			if budget > 0 {
				b := budget
				params.MaxPrice = &b
			}

			// pull a few pages so the scorer has something to chew on
			var candidates []model.Product
			for p := 1; p <= pages; p++ {
				params.Page = p
				page, err := a.client.ListProducts(ctx, params)
				if err != nil {
					return err
				}
				candidates = append(candidates, page.Items...)
				if p >= page.Pages {
					break
				}
			}

			got := giftfinder.Suggest(candidates, giftfinder.Criteria{
				Age:       age,
				Budget:    budget,
				Interests: interests,
				Limit:     limit,
			})
			if len(got) == 0 {
				fmt.Println("no matching gifts found; try a broader budget or fewer interests")
				return nil
			}

			fmt.Println(headerStyle.Render("gift ideas"))
			for i, s := range got {
				p := s.Product
				line := strconv.Itoa(i+1) + ". " + p.Name + "  " + format.VND(p.Price)
				if p.Rating != nil {
					line += "  " + format.Stars(*p.Rating)
				}
				fmt.Println(line)
				fmt.Println(faintStyle.Render("   ages " + ageRange(p.AgeMin, p.AgeMax) + "  id " + p.ID))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&age, "age", 0, "child's age in years")
	cmd.Flags().Float64Var(&budget, "budget", 0, "budget in đồng")
	cmd.Flags().StringArrayVar(&interests, "interest", nil, "interest keyword (repeatable)")
	cmd.Flags().StringVar(&keyword, "keyword", "", "narrow candidates by keyword")
	cmd.Flags().IntVar(&limit, "limit", giftfinder.DefaultLimit, "max suggestions")
	cmd.Flags().IntVar(&pages, "pages", 3, "catalog pages to scan")
	return cmd
}
