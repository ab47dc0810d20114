package address_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/address"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() address.Details {
	return address.Details{
		Label:   "Home",
		Address: "221B Baker Street",
		City:    "Mumbai",
		State:   "Maharashtra",
		Pincode: "400001",
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		a, err := address.NewAddress(7, validDetails(), true)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(7), a.UserID())
		assert.True(t, a.IsDefault())
		assert.True(t, a.IsOwnedBy(7))
		assert.False(t, a.IsOwnedBy(8))
	})

	t.Run("missing required fields", func(t *testing.T) {
		details := validDetails()
		details.City = ""
		details.Pincode = ""

		_, err := address.NewAddress(7, details, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := address.NewAddress(0, validDetails(), false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("landmark and coordinates are optional", func(t *testing.T) {
		_, err := address.NewAddress(7, validDetails(), false)
		require.NoError(t, err)
	})
}

func TestRestoreAddress(t *testing.T) {
	t.Run("valid restore", func(t *testing.T) {
		created := time.Now().UTC().Add(-time.Hour)

		a, err := address.RestoreAddress(3, 7, validDetails(), true, created)

		require.NoError(t, err)
		assert.Equal(t, int64(3), a.ID())
		assert.Equal(t, created, a.CreatedAt())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := address.RestoreAddress(0, 7, validDetails(), false, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var a address.Address
		require.ErrorIs(t, a.Validate(), address.ErrAddressIsNotConstructed)
	})
}

func TestAddress_DefaultFlag(t *testing.T) {
	a, err := address.NewAddress(7, validDetails(), false)
	require.NoError(t, err)

	a.MarkDefault()
	assert.True(t, a.IsDefault())

	a.ClearDefault()
	assert.False(t, a.IsDefault())
}

func TestAddress_UpdateDetails(t *testing.T) {
	a, err := address.NewAddress(7, validDetails(), false)
	require.NoError(t, err)

	t.Run("valid update", func(t *testing.T) {
		details := validDetails()
		details.Label = "Work"

		require.NoError(t, a.UpdateDetails(details))
		assert.Equal(t, "Work", a.Details().Label)
	})

	t.Run("invalid update is rejected", func(t *testing.T) {
		details := validDetails()
		details.Address = ""

		require.ErrorIs(t, a.UpdateDetails(details), errs.ErrValueIsRequired)
		assert.Equal(t, "221B Baker Street", a.Details().Address)
	})
}
