package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateProduct_Multipart(t *testing.T) {
	t.Parallel()

	img := filepath.Join(t.TempDir(), "bear.jpg")
	require.NoError(t, os.WriteFile(img, []byte("fake-jpeg-bytes"), 0o600))

	var gotName, gotPrice, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		gotPrice = r.FormValue("price")

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotFile = hdr.Filename + ":" + string(b)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"product": map[string]any{"_id": "p9", "name": gotName, "price": 250000},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("admin-tok")))
	p, err := c.CreateProduct(context.Background(), ProductInput{
		Name:         "gấu bông",
		Price:        250000,
		CountInStock: 10,
	}, img)
	require.NoError(t, err)

	assert.Equal(t, "p9", p.ID)
	assert.Equal(t, "gấu bông", gotName)
	assert.Equal(t, "250000", gotPrice)
	assert.Equal(t, "bear.jpg:fake-jpeg-bytes", gotFile)
}

func TestClient_UpdateProduct_JSONWithoutImage(t *testing.T) {
	t.Parallel()

	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"product": map[string]any{"_id": "p1", "name": "updated"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("admin-tok")))
	_, err := c.UpdateProduct(context.Background(), "p1", ProductInput{Name: "updated", Price: 99000}, "")
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "updated", gotBody["name"])
	// unset optional bounds never travel
	_, hasMin := gotBody["ageMin"]
	assert.False(t, hasMin)
}

func TestClient_ValidatePromotion(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		require.Equal(t, "TET25", body["code"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"promo": map[string]any{
				"code":           "TET25",
				"discountType":   "percent",
				"discountValue":  10,
				"discountAmount": 35000,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("tok")))
	promo, err := c.ValidatePromotion(context.Background(), "TET25", 350000)
	require.NoError(t, err)
	assert.Equal(t, "percent", promo.DiscountType)
	assert.Equal(t, float64(35000), promo.DiscountAmount)
}

func TestClient_DeleteProduct_NoContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("tok")))
	require.NoError(t, c.DeleteProduct(context.Background(), "p1"))
}
