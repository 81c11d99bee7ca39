package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIValidationResponseUnmarshalPreservesOrder(t *testing.T) {
	body := `{
		"DeliveryDate": ["DeliveryDateOutsideDeliveryWindow"],
		"Quantity": ["QuantityGreaterThanZero"],
		"Price": ["PriceGreaterThanListPrice"]
	}`

	var resp APIValidationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Fields, 3)
	assert.Equal(t, "DeliveryDate", resp.Fields[0].Field)
	assert.Equal(t, []string{"DeliveryDateOutsideDeliveryWindow"}, resp.Fields[0].IDs)
	assert.Equal(t, "Quantity", resp.Fields[1].Field)
	assert.Equal(t, "Price", resp.Fields[2].Field)
}

func TestAPIValidationResponseUnmarshalRejectsNonObject(t *testing.T) {
	var resp APIValidationResponse
	assert.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &resp))
	assert.Error(t, json.Unmarshal([]byte(`{"field": "not-an-array"}`), &resp))
}

func TestAPIValidationResponseUnmarshalEmpty(t *testing.T) {
	var resp APIValidationResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))
	assert.Empty(t, resp.Fields)
}

func TestTransformAPIValidationResponse(t *testing.T) {
	resp := APIValidationResponse{Fields: []APIFieldErrors{
		{Field: "DeliveryDate", IDs: []string{"DeliveryDateOutsideDeliveryWindow"}},
		{Field: "Quantity", IDs: []string{"QuantityGreaterThanZero"}},
	}}

	errs := TransformAPIValidationResponse(resp)

	require.Len(t, errs, 2)
	assert.Equal(t, Error{Field: "DeliveryDate", ID: "DeliveryDateOutsideDeliveryWindow"}, errs[0])
	assert.Equal(t, Error{Field: "Quantity", ID: "QuantityGreaterThanZero"}, errs[1])
}

func TestTransformAPIValidationResponseStripsRowIndexes(t *testing.T) {
	resp := APIValidationResponse{Fields: []APIFieldErrors{
		{Field: "[0].DeliveryDate", IDs: []string{"DeliveryDateOutsideDeliveryWindow"}},
		{Field: "[1].DeliveryDate", IDs: []string{"DeliveryDateOutsideDeliveryWindow"}},
		{Field: "[1].Quantity", IDs: []string{"QuantityGreaterThanZero"}},
	}}

	errs := TransformAPIValidationResponse(resp)

	// Rows collapse onto one canonical field each.
	require.Len(t, errs, 2)
	assert.Equal(t, "DeliveryDate", errs[0].Field)
	assert.Equal(t, "Quantity", errs[1].Field)
}

func TestTransformAPIValidationResponseUnionsIDsPerField(t *testing.T) {
	resp := APIValidationResponse{Fields: []APIFieldErrors{
		{Field: "[0].Quantity", IDs: []string{"QuantityGreaterThanZero", "QuantityLessThanMax"}},
		{Field: "[1].Quantity", IDs: []string{"QuantityGreaterThanZero"}},
		{Field: "[2].Quantity", IDs: []string{"QuantityRequired"}},
	}}

	errs := TransformAPIValidationResponse(resp)

	require.Len(t, errs, 3)
	assert.Equal(t, "QuantityGreaterThanZero", errs[0].ID)
	assert.Equal(t, "QuantityLessThanMax", errs[1].ID)
	assert.Equal(t, "QuantityRequired", errs[2].ID)
}

func TestTransformAPIValidationResponseFieldMajorOrder(t *testing.T) {
	// Errors group by first appearance of the field, not by response row.
	resp := APIValidationResponse{Fields: []APIFieldErrors{
		{Field: "[0].DeliveryDate", IDs: []string{"DeliveryDateNotReal"}},
		{Field: "[0].Quantity", IDs: []string{"QuantityRequired"}},
		{Field: "[1].DeliveryDate", IDs: []string{"DeliveryDateOutsideDeliveryWindow"}},
	}}

	errs := TransformAPIValidationResponse(resp)

	require.Len(t, errs, 3)
	assert.Equal(t, "DeliveryDateNotReal", errs[0].ID)
	assert.Equal(t, "DeliveryDateOutsideDeliveryWindow", errs[1].ID)
	assert.Equal(t, "QuantityRequired", errs[2].ID)
}

func TestTransformAPIValidationResponseEmpty(t *testing.T) {
	assert.Empty(t, TransformAPIValidationResponse(APIValidationResponse{}))
}
