package ordapi

import (
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

// RecipientLine is one per-recipient row of a bulk create request, aligned
// by index to the selected recipients list.
type RecipientLine struct {
	Name         string `json:"name"`
	OdsCode      string `json:"odsCode"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
}

// CreateOrderItemRequest is the wire shape ORDAPI expects for a new order
// item. Dates are YYYY-MM-DD, quantity a parsed integer, price a parsed
// number.
type CreateOrderItemRequest struct {
	ServiceRecipient    *models.ServiceRecipient `json:"serviceRecipient,omitempty"`
	ServiceRecipients   []RecipientLine          `json:"serviceRecipients,omitempty"`
	CatalogueItemID     string                   `json:"catalogueItemId"`
	CatalogueItemName   string                   `json:"catalogueItemName"`
	CatalogueItemType   string                   `json:"catalogueItemType"`
	CatalogueSolutionID string                   `json:"catalogueSolutionId,omitempty"`
	DeliveryDate        string                   `json:"deliveryDate,omitempty"`
	Quantity            int                      `json:"quantity,omitempty"`
	EstimationPeriod    string                   `json:"estimationPeriod,omitempty"`
	ProvisioningType    models.ProvisioningType  `json:"provisioningType"`
	Type                models.PriceType         `json:"type"`
	CurrencyCode        string                   `json:"currencyCode"`
	ItemUnit            models.ItemUnit          `json:"itemUnit"`
	TimeUnit            *models.TimeUnit         `json:"timeUnit,omitempty"`
	PriceID             string                   `json:"priceId"`
	Price               float64                  `json:"price"`
}

// UpdateOrderItemRequest is the wire shape for updating the editable fields
// of an existing order item.
type UpdateOrderItemRequest struct {
	DeliveryDate     string  `json:"deliveryDate,omitempty"`
	Quantity         int     `json:"quantity,omitempty"`
	EstimationPeriod string  `json:"estimationPeriod,omitempty"`
	Price            float64 `json:"price"`
}
