package models

// ProvisioningType is the pricing model discriminant for an order item.
// It decides which page manifest is loaded and which validators apply.
type ProvisioningType string

const (
	ProvisioningOnDemand    ProvisioningType = "OnDemand"
	ProvisioningPatient     ProvisioningType = "Patient"
	ProvisioningDeclarative ProvisioningType = "Declarative"
)

// PriceType discriminates flat and tiered catalogue prices.
type PriceType string

const (
	PriceTypeFlat   PriceType = "flat"
	PriceTypeTiered PriceType = "tiered"
)

// ItemUnit describes what a single unit of the priced item is.
type ItemUnit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TimeUnit describes the billing period for time-based prices.
type TimeUnit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Price is a catalogue price as returned by the pricing service.
type Price struct {
	PriceID          string           `json:"priceId"`
	Type             PriceType        `json:"type"`
	ProvisioningType ProvisioningType `json:"provisioningType"`
	CurrencyCode     string           `json:"currencyCode"`
	ItemUnit         ItemUnit         `json:"itemUnit"`
	TimeUnit         *TimeUnit        `json:"timeUnit,omitempty"`
	Price            float64          `json:"price"`
}
