package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhtranvn/toystore/internal/format"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	currentStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func renderProducts(w io.Writer, items []model.Product, wishlisted func(string) bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tNAME\tPRICE\tRATING\tSTOCK\t"))
	for _, p := range items {
		mark := ""
		if wishlisted != nil && wishlisted(p.ID) {
			mark = " ♥"
		}
		rating := "-"
		if p.Rating != nil {
			rating = format.Stars(*p.Rating)
		}
		stock := "out of stock"
		if p.InStock() {
			stock = fmt.Sprintf("%d", p.CountInStock)
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\t\n",
			p.ID, format.Truncate(p.Name, 40), mark, format.VND(p.Price), rating, stock)
	}
	_ = tw.Flush()
}

func renderPosts(w io.Writer, items []model.Post) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tTITLE\tDATE\t"))
	for _, p := range items {
		date := "-"
		if p.CreatedAt != nil {
			date = p.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.ID, format.Truncate(p.Title, 60), date)
	}
	_ = tw.Flush()
}

func renderOrders(w io.Writer, items []model.Order) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tDATE\tTOTAL\tPAID\tDELIVERED\t"))
	for _, o := range items {
		date := "-"
		if o.CreatedAt != nil {
			date = o.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			o.ID, date, format.VND(o.TotalPrice), yesNo(o.IsPaid), yesNo(o.IsDelivered))
	}
	_ = tw.Flush()
}

func renderCustomers(w io.Writer, items []model.Customer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID\tNAME\tEMAIL\tADMIN\t"))
	for _, u := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", u.ID, u.Name, u.Email, yesNo(u.IsAdmin))
	}
	_ = tw.Flush()
}

// renderPager prints the numbered page control, e.g. "« 1 … 4 [5] 6 … 20 »".
// With one page or fewer nothing is printed at all.
func renderPager(w io.Writer, win query.Window) {
	if win.Pages == nil {
		return
	}
	var parts []string
	if win.HasPrev {
		parts = append(parts, "«")
	} else {
		parts = append(parts, faintStyle.Render("«"))
	}
	if win.ShowFirst {
		parts = append(parts, "1")
	}
	if win.LeadingGap {
		parts = append(parts, "…")
	}
	for _, n := range win.Pages {
		if n == win.Current {
			parts = append(parts, currentStyle.Render(fmt.Sprintf("[%d]", n)))
		} else {
			parts = append(parts, fmt.Sprintf("%d", n))
		}
	}
	if win.TrailingGap {
		parts = append(parts, "…")
	}
	if win.ShowLast {
		parts = append(parts, fmt.Sprintf("%d", win.Total))
	}
	if win.HasNext {
		parts = append(parts, "»")
	} else {
		parts = append(parts, faintStyle.Render("»"))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func renderPageSummary(w io.Writer, page, pages, total int) {
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("page %d/%d, %d total", page, max(pages, 1), total)))
}

func yesNo(b bool) string {
	if b {
		return okStyle.Render("yes")
	}
	return "no"
}
