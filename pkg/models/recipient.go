package models

// ServiceRecipient is an organisation that will receive an ordered item,
// identified by its ODS code.
type ServiceRecipient struct {
	Name    string `json:"name"`
	OdsCode string `json:"odsCode"`
}
