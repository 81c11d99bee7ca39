package orderitem

import (
	"strconv"

	"github.com/Gobusters/ectolinq"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/ordapi"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// catalogueItemType maps an order section to ORDAPI's item type
// discriminator.
func catalogueItemType(t models.OrderItemType) string {
	switch t {
	case models.OrderItemCatalogueSolution:
		return "Solution"
	case models.OrderItemAdditionalService:
		return "AdditionalService"
	case models.OrderItemAssociatedService:
		return "AssociatedService"
	}
	return ""
}

// BuildCreateRequest shapes a validated form submission into ORDAPI's
// create body. Values must have passed the form validators; dates go out as
// YYYY-MM-DD, quantity as a parsed integer, price as a parsed number.
func BuildCreateRequest(itemType models.OrderItemType, draft *session.OrderItemDraft, m *manifest.Manifest, values models.FormValues) ordapi.CreateOrderItemRequest {
	price := draft.SelectedPrice

	req := ordapi.CreateOrderItemRequest{
		CatalogueItemID:     draft.ItemID,
		CatalogueItemName:   draft.ItemName,
		CatalogueItemType:   catalogueItemType(itemType),
		CatalogueSolutionID: draft.CatalogueSolutionID,
		ProvisioningType:    price.ProvisioningType,
		Type:                price.Type,
		CurrencyCode:        price.CurrencyCode,
		ItemUnit:            price.ItemUnit,
		TimeUnit:            price.TimeUnit,
		PriceID:             price.PriceID,
		Price:               parsePrice(values.Get("price")),
	}

	if m.HasQuestion("selectEstimationPeriod") {
		req.EstimationPeriod = values.Get("selectEstimationPeriod")
	}

	if m.SolutionTable != nil {
		req.ServiceRecipients = buildRecipientLines(draft, m, values)
		return req
	}

	recipient := models.ServiceRecipient{
		Name:    draft.ServiceRecipientName,
		OdsCode: draft.ServiceRecipientID,
	}
	req.ServiceRecipient = &recipient
	req.DeliveryDate = validation.ExtractDate("deliveryDate", values)
	req.Quantity = parseQuantity(values.Get("quantity"))

	return req
}

// BuildUpdateRequest shapes a validated form submission into ORDAPI's
// update body for an existing order item.
func BuildUpdateRequest(m *manifest.Manifest, values models.FormValues) ordapi.UpdateOrderItemRequest {
	req := ordapi.UpdateOrderItemRequest{
		Price: parsePrice(values.Get("price")),
	}

	if m.HasQuestion("deliveryDate") {
		req.DeliveryDate = validation.ExtractDate("deliveryDate", values)
	}
	if m.HasQuestion("quantity") {
		req.Quantity = parseQuantity(values.Get("quantity"))
	}
	if m.HasQuestion("selectEstimationPeriod") {
		req.EstimationPeriod = values.Get("selectEstimationPeriod")
	}

	return req
}

// buildRecipientLines builds the bulk rows, aligned by index to the
// selected recipients. A single submitted date is shared across every row.
// The per-row quantity comes from whichever question the solution table
// declares; patient pages submit it as practiceSize.
func buildRecipientLines(draft *session.OrderItemDraft, m *manifest.Manifest, values models.FormValues) []ordapi.RecipientLine {
	quantityField := "quantity"
	if m.SolutionCell("practiceSize") != nil {
		quantityField = "practiceSize"
	}

	sharedDate := values.Len("deliveryDate-day") == 1
	recipients := draft.SelectedRecipientList()

	lines := make([]ordapi.RecipientLine, 0, len(recipients))
	for i, recipient := range recipients {
		idx := i
		if sharedDate {
			idx = 0
		}
		lines = append(lines, ordapi.RecipientLine{
			Name:         recipient.Name,
			OdsCode:      recipient.OdsCode,
			Quantity:     parseQuantity(values.At(quantityField, i)),
			DeliveryDate: validation.ExtractDateAt("deliveryDate", values, idx),
		})
	}
	return lines
}

func parseQuantity(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}

func parsePrice(value string) float64 {
	n, _ := strconv.ParseFloat(value, 64)
	return n
}

// recipientOdsCodes is used for logging context on failures.
func recipientOdsCodes(recipients []models.ServiceRecipient) []string {
	return ectolinq.Map(recipients, func(r models.ServiceRecipient) string {
		return r.OdsCode
	})
}
