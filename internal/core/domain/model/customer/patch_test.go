package customer_test

import (
	"testing"
	"time"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewPatch(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		p, err := customer.NewPatch(nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, p.IsEmpty())
	})

	t.Run("partial patch keeps only supplied fields", func(t *testing.T) {
		p, err := customer.NewPatch(nil, ptr("new@jaba.com"), nil)

		require.NoError(t, err)
		assert.False(t, p.IsEmpty())
		assert.Nil(t, p.FullName)
		assert.Equal(t, "new@jaba.com", *p.EmailAddress)
	})

	t.Run("invalid supplied field is rejected", func(t *testing.T) {
		_, err := customer.NewPatch(ptr(""), nil, ptr("12345"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPatch_ChangesEmailOf(t *testing.T) {
	c, _ := customer.NewCustomer("Jaba Ganji", "ganji@jaba.com", "+254791111111", time.Now())

	same, _ := customer.NewPatch(nil, ptr("ganji@jaba.com"), nil)
	other, _ := customer.NewPatch(nil, ptr("other@jaba.com"), nil)
	none, _ := customer.NewPatch(ptr("Other Name"), nil, nil)

	assert.False(t, same.ChangesEmailOf(c))
	assert.True(t, other.ChangesEmailOf(c))
	assert.False(t, none.ChangesEmailOf(c))
}

func TestPatch_Stamp(t *testing.T) {
	p, _ := customer.NewPatch(ptr("Other Name"), nil, nil)
	now := time.Now().UTC()

	stamped := p.Stamp(now)

	assert.Equal(t, now, stamped.UpdatedAt)
	assert.True(t, p.UpdatedAt.IsZero())
}
