package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLookups(t *testing.T) {
	s := NewStore(
		[]Customer{{ID: "1", Name: "Empresa ABC Ltda."}},
		[]Service{{ID: "5", Description: "Recarga de gás refrigerante", Price: decimal.NewFromInt(350)}},
	)

	c, err := s.CustomerByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Empresa ABC Ltda.", c.Name)

	_, err = s.CustomerByID("999")
	assert.ErrorIs(t, err, ErrNotFound)

	svc, err := s.ServiceByID("5")
	require.NoError(t, err)
	assert.True(t, svc.Price.Equal(decimal.NewFromInt(350)))

	_, err = s.ServiceByID("999")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, s.Customers(), 1)
	assert.Len(t, s.Services(), 1)
}
