package models

// OrderItemType identifies which order section an item belongs to.
type OrderItemType string

const (
	OrderItemCatalogueSolution OrderItemType = "catalogue-solutions"
	OrderItemAdditionalService OrderItemType = "additional-services"
	OrderItemAssociatedService OrderItemType = "associated-services"
)

// OrderItem is one priced line of an order as persisted by ORDAPI.
type OrderItem struct {
	OrderItemID       int              `json:"orderItemId"`
	CatalogueItemID   string           `json:"catalogueItemId"`
	CatalogueItemName string           `json:"catalogueItemName"`
	CatalogueItemType string           `json:"catalogueItemType"`
	ServiceRecipient  ServiceRecipient `json:"serviceRecipient"`
	DeliveryDate      string           `json:"deliveryDate,omitempty"`
	Quantity          int              `json:"quantity"`
	EstimationPeriod  string           `json:"estimationPeriod,omitempty"`
	ProvisioningType  ProvisioningType `json:"provisioningType"`
	Type              PriceType        `json:"type"`
	CurrencyCode      string           `json:"currencyCode"`
	ItemUnit          ItemUnit         `json:"itemUnit"`
	TimeUnit          *TimeUnit        `json:"timeUnit,omitempty"`
	Price             float64          `json:"price"`
}
