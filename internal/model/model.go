// Package model defines storefront entities mirrored from the JSON API.
// Fields the server may omit or null are pointers; all null handling
// happens at the decode boundary, not at call sites.
package model

import "time"

// Product is a catalog item as returned by the products endpoints.
type Product struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Slug         *string    `json:"slug,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Image        *string    `json:"image,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Price        float64    `json:"price"`
	CountInStock int        `json:"countInStock"`
	Rating       *float64   `json:"rating,omitempty"`
	NumReviews   int        `json:"numReviews"`
	AgeMin       *int       `json:"ageMin,omitempty"`
	AgeMax       *int       `json:"ageMax,omitempty"`
	Featured     bool       `json:"featured"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	Reviews      []Review   `json:"reviews,omitempty"`
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool { return p.CountInStock > 0 }

// Review is a customer rating attached to a product.
type Review struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Rating    float64    `json:"rating"`
	Comment   *string    `json:"comment,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Post is a blog entry shown on the storefront.
type Post struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Content   *string    `json:"content,omitempty"`
	Image     *string    `json:"image,omitempty"`
	Author    *string    `json:"author,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Customer is a storefront account. Admin listings return the full record;
// the profile endpoint returns the caller's own.
type Customer struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	IsAdmin   bool       `json:"isAdmin"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ShippingAddress is the delivery destination attached to an order and
// cached client-side between checkouts.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	Ward     string `json:"ward,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// AppliedPromo is a validated promotion as cached client-side after the
// server accepts a code.
type AppliedPromo struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"` // "percent" | "fixed"
	DiscountValue  float64 `json:"discountValue"`
	DiscountAmount float64 `json:"discountAmount"`
}

// CartItem is a client-side order line before checkout.
type CartItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Image     *string `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// OrderItem is a purchased line as echoed back by the orders endpoints.
type OrderItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Image     *string `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order is a placed order with its lifecycle flags. State transitions are
// server-owned; the client only reads them.
type Order struct {
	ID              string          `json:"_id"`
	User            *Customer       `json:"user,omitempty"`
	Items           []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   *string         `json:"paymentMethod,omitempty"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	DiscountAmount  float64         `json:"discountAmount"`
	TotalPrice      float64         `json:"totalPrice"`
	PromoCode       *string         `json:"promoCode,omitempty"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}

// Promotion is an admin-managed discount campaign.
type Promotion struct {
	ID            string     `json:"_id"`
	Code          string     `json:"code"`
	Description   *string    `json:"description,omitempty"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	Active        bool       `json:"active"`
}

// CarouselSlide is one entry of the homepage carousel.
type CarouselSlide struct {
	ID      string  `json:"_id,omitempty"`
	Image   string  `json:"image"`
	Title   *string `json:"title,omitempty"`
	Caption *string `json:"caption,omitempty"`
	Link    *string `json:"link,omitempty"`
	Order   int     `json:"order"`
}
