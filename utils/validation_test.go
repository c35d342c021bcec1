package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string   `json:"email" validate:"required,email"`
	Price  *float64 `json:"price" validate:"required,gte=0"`
	Kind   string   `json:"kind" validate:"omitempty,oneof=a b"`
	Nested struct {
		Count int `json:"count" validate:"gte=1"`
	} `json:"nested"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	neg := -1.0
	details := ValidateStruct(v, sample{Email: "nope", Price: &neg, Kind: "c"})
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be at least 0", details["price"])
	assert.Equal(t, "must be one of: a, b", details["kind"])
	assert.Equal(t, "must be at least 1", details["nested.count"])

	details = ValidateStruct(v, sample{Email: "a@b.co"})
	assert.Equal(t, "is required", details["price"])

	ok := 3.0
	s := sample{Email: "a@b.co", Price: &ok}
	s.Nested.Count = 1
	assert.Nil(t, ValidateStruct(v, s))
}
