package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProductFromRequestValid(t *testing.T) {
	req := productRequest{
		Name:        "Laptop X",
		Description: "flagship",
		Favorite:    true,
		Images:      []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		Options: []optionRequest{
			{
				Color:         "Black",
				Variant:       "i7/16GB",
				OriginalPrice: "15000000",
				SalePrice:     "13500000",
				Stock:         "5",
				Images:        []string{"/uploads/opt1.jpg"},
				Specs: []specRequest{
					{Description: "Intel Core i7", Image: "/uploads/cpu.jpg"},
					{Description: "16GB RAM"},
				},
			},
		},
	}

	product, err := buildProductFromRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "Laptop X", product.Name)
	assert.True(t, product.Favorite)

	require.Len(t, product.Images, 2)
	assert.Equal(t, 0, product.Images[0].SortOrder)
	assert.Equal(t, 1, product.Images[1].SortOrder)

	require.Len(t, product.Options, 1)
	option := product.Options[0]
	assert.Equal(t, "Black", option.Color)
	assert.Equal(t, "i7/16GB", option.Variant)
	assert.Equal(t, float64(15000000), option.OriginalPrice)
	assert.Equal(t, float64(13500000), option.SalePrice)
	assert.Equal(t, 5, option.Stock)
	assert.Len(t, option.Images, 1)
	assert.Len(t, option.Specs, 2)
}

func TestBuildProductFromRequestChildCountsMatchPayload(t *testing.T) {
	req := productRequest{
		Name: "Widget",
		Options: []optionRequest{
			{OriginalPrice: "100", SalePrice: "90", Stock: "1"},
			{OriginalPrice: "200", SalePrice: "150", Stock: "2"},
			{OriginalPrice: "300", SalePrice: "250", Stock: "3"},
		},
	}

	product, err := buildProductFromRequest(req)
	require.NoError(t, err)
	assert.Len(t, product.Options, len(req.Options))
}

func TestBuildProductFromRequestMissingName(t *testing.T) {
	_, err := buildProductFromRequest(productRequest{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestBuildProductFromRequestRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name   string
		option optionRequest
		want   string
	}{
		{"garbage original price", optionRequest{OriginalPrice: "abc", SalePrice: "1"}, "invalid original_price"},
		{"garbage sale price", optionRequest{OriginalPrice: "1", SalePrice: "1,5"}, "invalid sale_price"},
		{"negative price", optionRequest{OriginalPrice: "-10", SalePrice: "1"}, "invalid original_price"},
		{"garbage stock", optionRequest{OriginalPrice: "1", SalePrice: "1", Stock: "lots"}, "invalid stock"},
		{"negative stock", optionRequest{OriginalPrice: "1", SalePrice: "1", Stock: "-3"}, "invalid stock"},
		{"NaN original price", optionRequest{OriginalPrice: "NaN", SalePrice: "1"}, "invalid original_price"},
		{"lowercase nan sale price", optionRequest{OriginalPrice: "1", SalePrice: "nan"}, "invalid sale_price"},
		{"infinite original price", optionRequest{OriginalPrice: "Inf", SalePrice: "1"}, "invalid original_price"},
		{"signed infinite sale price", optionRequest{OriginalPrice: "1", SalePrice: "+Inf"}, "invalid sale_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildProductFromRequest(productRequest{
				Name:    "Widget",
				Options: []optionRequest{tt.option},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildOptionFromRequestEmptyNumbersDefaultToZero(t *testing.T) {
	option, err := buildOptionFromRequest(optionRequest{Color: "Red"})
	require.NoError(t, err)
	assert.Zero(t, option.OriginalPrice)
	assert.Zero(t, option.SalePrice)
	assert.Zero(t, option.Stock)
}
