package checkout

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

func validForm() Form {
	return Form{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Address: "12 Analytical Way",
		City:    "London",
		ZIP:     "N1 9GU",
		Card:    "4111 1111 1111 1111",
	}
}

func TestValidFormPasses(t *testing.T) {
	assert.Nil(t, validForm().Validate())
}

func TestCardLength(t *testing.T) {
	for _, tc := range []struct {
		card string
		ok   bool
	}{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{" 4111\t1111 1111 1111 ", true},
		{"4242\u00a04242\u00a04242\u00a04242", true},
		{"4242\v4242\u20074242 4242", true},
		{"411111111111111", false},
		{"41111111111111111", false},
		{"4111 1111 1111 111", false},
		{"4111-1111-1111-1111", false},
		{"", false},
	} {
		f := validForm()
		f.Card = tc.card
		fe := f.Validate()
		if tc.ok {
			assert.Nil(t, fe, tc.card)
			continue
		}
		require.NotNil(t, fe, tc.card)
		assert.Equal(t, "Card number must be 16 digits", fe[FieldCard], tc.card)
	}
}

func TestEmailShape(t *testing.T) {
	for email, ok := range map[string]bool{
		"a@b.c":           true,
		"ada@example.io":  true,
		"ada@example":     false,
		"ada.example.com": false,
		"":                false,
	} {
		f := validForm()
		f.Email = email
		_, failed := f.Validate()[FieldEmail]
		assert.Equal(t, !ok, failed, email)
	}
}

func TestAllFieldsReported(t *testing.T) {
	fe := Form{}.Validate()
	require.NotNil(t, fe)
	assert.Len(t, fe, 6)
	assert.Equal(t, "ZIP code is required", fe[FieldZIP])
	assert.Equal(t,
		"name: Name is required; email: Valid email is required; address: Address is required; city: City is required; zip: ZIP code is required; card: Card number must be 16 digits",
		fe.Error())
}

func TestPlace(t *testing.T) {
	store := catalog.NewStore(catalog.DefaultSeed())
	c := cart.New()
	for _, id := range []int{1, 1, 3} {
		p, err := store.Get(id)
		require.NoError(t, err)
		_, err = c.Add(p)
		require.NoError(t, err)
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	o, fe := Place(validForm(), c, now)
	require.Nil(t, fe)
	assert.NotEqual(t, uuid.Nil, o.ID)
	assert.Equal(t, now, o.PlacedAt)
	assert.Equal(t, 3, o.Items())
	assert.True(t, decimal.RequireFromString("149.97").Equal(o.Total))
	assert.Equal(t, "••••••••••••1111", o.Card)
	assert.Equal(t, 3, c.Count(), "placing an order leaves the cart alone")

	bad := validForm()
	bad.Card = "123"
	_, fe = Place(bad, c, now)
	assert.Contains(t, fe, FieldCard)
}
