package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

func TestSeedKeysDoNotIncludePageData(t *testing.T) {
	keys := SeedKeys()

	assert.NotContains(t, keys, KeyOrderItemPageData)
	assert.Contains(t, keys, KeySelectedItemID)
	assert.Contains(t, keys, KeySelectedPriceID)
	assert.Contains(t, keys, KeyPlannedDeliveryDate)
}

func TestSelectedRecipientListSingle(t *testing.T) {
	draft := OrderItemDraft{
		ServiceRecipientID:   "A10001",
		ServiceRecipientName: "Blue Mountain Medical Practice",
	}

	out := draft.SelectedRecipientList()

	require.Len(t, out, 1)
	assert.Equal(t, "A10001", out[0].OdsCode)
	assert.Equal(t, "Blue Mountain Medical Practice", out[0].Name)
}

func TestSelectedRecipientListEmpty(t *testing.T) {
	draft := OrderItemDraft{}
	assert.Nil(t, draft.SelectedRecipientList())
}

func TestSelectedRecipientListPreservesSelectionOrder(t *testing.T) {
	draft := OrderItemDraft{
		Recipients: []models.ServiceRecipient{
			{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"},
			{Name: "Green Valley Surgery", OdsCode: "A10002"},
			{Name: "Riverside Health Centre", OdsCode: "A10003"},
		},
		SelectedRecipients: []string{"A10003", "A10001"},
	}

	out := draft.SelectedRecipientList()

	require.Len(t, out, 2)
	assert.Equal(t, "A10003", out[0].OdsCode)
	assert.Equal(t, "Riverside Health Centre", out[0].Name)
	assert.Equal(t, "A10001", out[1].OdsCode)
}

func TestSelectedRecipientListUnknownCode(t *testing.T) {
	draft := OrderItemDraft{
		Recipients:         []models.ServiceRecipient{{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"}},
		SelectedRecipients: []string{"A10001", "A99999"},
	}

	out := draft.SelectedRecipientList()

	require.Len(t, out, 2)
	assert.Equal(t, "A99999", out[1].OdsCode)
	assert.Empty(t, out[1].Name)
}
