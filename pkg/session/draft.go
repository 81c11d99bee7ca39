package session

import (
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

// Session keys. The selection keys are written by earlier wizard steps and
// seed the draft for a new order item; the draft key carries the assembled
// page data between the GET and the POST of one order item page.
const (
	KeyOrderItemPageData = "orderItemPageData"

	KeySelectedItemID              = "selectedItemId"
	KeySelectedItemName            = "selectedItemName"
	KeySelectedRecipientID         = "selectedRecipientId"
	KeySelectedRecipientName       = "selectedRecipientName"
	KeySelectedPriceID             = "selectedPriceId"
	KeySelectedCatalogueSolutionID = "selectedCatalogueSolutionId"
	KeyPlannedDeliveryDate         = "plannedDeliveryDate"
	KeyRecipients                  = "recipients"
	KeySelectedRecipients          = "selectedRecipients"
)

// SeedKeys are the transient selection keys that are cleared once a new
// order item has been submitted successfully.
func SeedKeys() []string {
	return []string{
		KeySelectedItemID,
		KeySelectedItemName,
		KeySelectedRecipientID,
		KeySelectedRecipientName,
		KeySelectedPriceID,
		KeySelectedCatalogueSolutionID,
		KeyPlannedDeliveryDate,
		KeyRecipients,
		KeySelectedRecipients,
	}
}

// OrderItemDraft is the session-scoped draft carried between the GET and
// POST of an order item page. It is the POST's source of truth for item and
// recipient identity and for which price the page was rendered against.
type OrderItemDraft struct {
	ItemID               string                    `json:"itemId"`
	ItemName             string                    `json:"itemName"`
	ServiceRecipientID   string                    `json:"serviceRecipientId,omitempty"`
	ServiceRecipientName string                    `json:"serviceRecipientName,omitempty"`
	CatalogueSolutionID  string                    `json:"catalogueSolutionId,omitempty"`
	Recipients           []models.ServiceRecipient `json:"recipients,omitempty"`
	SelectedRecipients   []string                  `json:"selectedRecipients,omitempty"`
	SelectedPrice        models.Price              `json:"selectedPrice"`
	FormData             models.FormValues         `json:"formData,omitempty"`
}

// SelectedRecipientList resolves the selected ODS codes against the full
// recipients list, preserving selection order. A draft for the single
// recipient flow returns its one recipient.
func (d *OrderItemDraft) SelectedRecipientList() []models.ServiceRecipient {
	if len(d.SelectedRecipients) == 0 {
		if d.ServiceRecipientID == "" {
			return nil
		}
		return []models.ServiceRecipient{{
			Name:    d.ServiceRecipientName,
			OdsCode: d.ServiceRecipientID,
		}}
	}

	byCode := make(map[string]models.ServiceRecipient, len(d.Recipients))
	for _, r := range d.Recipients {
		byCode[r.OdsCode] = r
	}

	selected := make([]models.ServiceRecipient, 0, len(d.SelectedRecipients))
	for _, code := range d.SelectedRecipients {
		if r, ok := byCode[code]; ok {
			selected = append(selected, r)
		} else {
			selected = append(selected, models.ServiceRecipient{OdsCode: code})
		}
	}
	return selected
}
