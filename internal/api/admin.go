package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/minhtranvn/toystore/internal/errs"
	"github.com/minhtranvn/toystore/internal/model"
	"github.com/minhtranvn/toystore/internal/query"
)

// ProductInput carries the writable product fields for admin mutations.
type ProductInput struct {
	Name         string
	Description  string
	Category     string
	Price        float64
	CountInStock int
	AgeMin       *int
	AgeMax       *int
	Featured     bool
}

func (in ProductInput) fields() map[string]string {
	f := map[string]string{
		"name":         in.Name,
		"description":  in.Description,
		"category":     in.Category,
		"price":        strconv.FormatFloat(in.Price, 'f', -1, 64),
		"countInStock": strconv.Itoa(in.CountInStock),
		"featured":     strconv.FormatBool(in.Featured),
	}
	if in.AgeMin != nil {
		f["ageMin"] = strconv.Itoa(*in.AgeMin)
	}
	if in.AgeMax != nil {
		f["ageMax"] = strconv.Itoa(*in.AgeMax)
	}
	return f
}

func (in ProductInput) jsonPayload() map[string]any {
	p := map[string]any{
		"name":         in.Name,
		"description":  in.Description,
		"category":     in.Category,
		"price":        in.Price,
		"countInStock": in.CountInStock,
		"featured":     in.Featured,
	}
	if in.AgeMin != nil {
		p["ageMin"] = *in.AgeMin
	}
	if in.AgeMax != nil {
		p["ageMax"] = *in.AgeMax
	}
	return p
}

// CreateProduct creates a product (admin). With imagePath set the request
// goes out as multipart with the image attached, otherwise as JSON.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput, imagePath string) (*model.Product, error) {
	return c.writeProduct(ctx, http.MethodPost, "/api/products", in, imagePath)
}

// UpdateProduct updates a product (admin). Semantics match CreateProduct.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductInput, imagePath string) (*model.Product, error) {
	return c.writeProduct(ctx, http.MethodPut, "/api/products/"+id, in, imagePath)
}

func (c *Client) writeProduct(ctx context.Context, method, path string, in ProductInput, imagePath string) (*model.Product, error) {
	var env struct {
		Product *model.Product `json:"product"`
	}
	if imagePath == "" {
		if err := c.send(ctx, method, path, in.jsonPayload(), &env); err != nil {
			return nil, err
		}
	} else {
		body, contentType, err := multipartBody(in.fields(), "image", imagePath)
		if err != nil {
			return nil, err
		}
		if err := c.do(ctx, method, path, nil, body, contentType, &env, true); err != nil {
			return nil, err
		}
	}
	if env.Product == nil {
		return nil, fmt.Errorf("product not found: %w", errs.ErrNotFound)
	}
	return env.Product, nil
}

// DeleteProduct removes a product (admin).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

type customerListEnvelope struct {
	Users []model.Customer `json:"users"`
	Page  int              `json:"page"`
	Pages *int             `json:"pages"`
	Total int              `json:"total"`
}

// ListCustomers pages through registered customers (admin).
func (c *Client) ListCustomers(ctx context.Context, p query.ListParams) (query.Paged[model.Customer], error) {
	var env customerListEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/users", p.Values(), nil, "", &env, true); err != nil {
		return query.Paged[model.Customer]{}, err
	}
	return query.Normalize(env.Users, env.Page, env.Pages, env.Total), nil
}

// SetCustomerAdmin grants or revokes the admin flag (admin).
func (c *Client) SetCustomerAdmin(ctx context.Context, id string, isAdmin bool) (*model.Customer, error) {
	var env struct {
		User *model.Customer `json:"user"`
	}
	if err := c.send(ctx, http.MethodPut, "/api/users/"+id, map[string]any{"isAdmin": isAdmin}, &env); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("user not found: %w", errs.ErrNotFound)
	}
	return env.User, nil
}

// DeleteCustomer removes an account (admin).
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

// PromotionInput carries the writable promotion fields.
type PromotionInput struct {
	Code          string   `json:"code"`
	Description   string   `json:"description,omitempty"`
	DiscountType  string   `json:"discountType"`
	DiscountValue float64  `json:"discountValue"`
	MinOrderValue float64  `json:"minOrderValue"`
	ExpiresAt     *string  `json:"expiresAt,omitempty"`
	Active        bool     `json:"active"`
}

// CreatePromotion creates a discount campaign (admin).
func (c *Client) CreatePromotion(ctx context.Context, in PromotionInput) (*model.Promotion, error) {
	var env struct {
		Promotion *model.Promotion `json:"promotion"`
	}
	if err := c.send(ctx, http.MethodPost, "/api/promotions", in, &env); err != nil {
		return nil, err
	}
	if env.Promotion == nil {
		return nil, fmt.Errorf("promotion not found: %w", errs.ErrNotFound)
	}
	return env.Promotion, nil
}

// ListPromotions pages through promotions (admin).
func (c *Client) ListPromotions(ctx context.Context, p query.ListParams) (query.Paged[model.Promotion], error) {
	var env struct {
		Promotions []model.Promotion `json:"promotions"`
		Page       int               `json:"page"`
		Pages      *int              `json:"pages"`
		Total      int               `json:"total"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/promotions", p.Values(), nil, "", &env, true); err != nil {
		return query.Paged[model.Promotion]{}, err
	}
	return query.Normalize(env.Promotions, env.Page, env.Pages, env.Total), nil
}

// DeletePromotion removes a promotion (admin).
func (c *Client) DeletePromotion(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/promotions/"+id, nil, nil)
}

// ValidatePromotion asks the server to price a promo code against an
// order total. Promotion math is server-owned; the result is cached in
// the promo preference.
func (c *Client) ValidatePromotion(ctx context.Context, code string, orderTotal float64) (model.AppliedPromo, error) {
	var env struct {
		Promo *model.AppliedPromo `json:"promo"`
	}
	body := map[string]any{"code": code, "orderTotal": orderTotal}
	if err := c.send(ctx, http.MethodPost, "/api/promotions/validate", body, &env); err != nil {
		return model.AppliedPromo{}, err
	}
	if env.Promo == nil {
		return model.AppliedPromo{}, fmt.Errorf("promotion not found: %w", errs.ErrNotFound)
	}
	return *env.Promo, nil
}

// multipartBody assembles a multipart form with the given fields plus one
// file part.
func multipartBody(fields map[string]string, fileField, filePath string) (io.Reader, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	part, err := mw.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}
