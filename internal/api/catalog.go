package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

type productListEnvelope struct {
	Products []model.Product `json:"products"`
	Page     int             `json:"page"`
	Pages    *int            `json:"pages"`
	Total    int             `json:"total"`
}

// ListProducts fetches one catalog page. Item order is the server's sort
// order and is preserved as-is.
func (c *Client) ListProducts(ctx context.Context, p query.ListParams) (query.Paged[model.Product], error) {
	var env productListEnvelope
	if err := c.get(ctx, "/api/products", p.Values(), &env); err != nil {
		return query.Paged[model.Product]{}, err
	}
	return query.Normalize(env.Products, env.Page, env.Pages, env.Total), nil
}

// GetProduct fetches one product by id or slug.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var env struct {
		Product *model.Product `json:"product"`
	}
	if err := c.get(ctx, "/api/products/"+id, nil, &env); err != nil {
		return nil, err
	}
	if env.Product == nil {
		return nil, fmt.Errorf("product not found: %w", errs.ErrNotFound)
	}
	return env.Product, nil
}

// TopProducts fetches the highest-rated products for the home page.
func (c *Client) TopProducts(ctx context.Context) ([]model.Product, error) {
	var env struct {
		Products []model.Product `json:"products"`
	}
	if err := c.get(ctx, "/api/products/top", nil, &env); err != nil {
		return nil, err
	}
	return env.Products, nil
}

// CreateReview posts a product review. Requires login.
func (c *Client) CreateReview(ctx context.Context, productID string, rating float64, comment string) error {
	body := map[string]any{"rating": rating, "comment": comment}
	return c.send(ctx, http.MethodPost, "/api/products/"+productID+"/reviews", body, nil)
}

type postListEnvelope struct {
	Posts []model.Post `json:"posts"`
	Page  int          `json:"page"`
	Pages *int         `json:"pages"`
	Total int          `json:"total"`
}

// ListPosts fetches one blog page.
func (c *Client) ListPosts(ctx context.Context, p query.ListParams) (query.Paged[model.Post], error) {
	var env postListEnvelope
	if err := c.get(ctx, "/api/posts", p.Values(), &env); err != nil {
		return query.Paged[model.Post]{}, err
	}
	return query.Normalize(env.Posts, env.Page, env.Pages, env.Total), nil
}

// GetPost fetches one blog post by id or slug.
func (c *Client) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var env struct {
		Post *model.Post `json:"post"`
	}
	if err := c.get(ctx, "/api/posts/"+id, nil, &env); err != nil {
		return nil, err
	}
	if env.Post == nil {
		return nil, fmt.Errorf("post not found: %w", errs.ErrNotFound)
	}
	return env.Post, nil
}

// Carousel fetches the homepage carousel slides in display order.
func (c *Client) Carousel(ctx context.Context) ([]model.CarouselSlide, error) {
	var env struct {
		Slides []model.CarouselSlide `json:"slides"`
	}
	if err := c.get(ctx, "/api/carousel", nil, &env); err != nil {
		return nil, err
	}
	return env.Slides, nil
}

// SetCarousel replaces the carousel slide set (admin).
func (c *Client) SetCarousel(ctx context.Context, slides []model.CarouselSlide) error {
	body := map[string]any{"slides": slides}
	return c.send(ctx, http.MethodPut, "/api/carousel", body, nil)
}
