package orderitem

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/appcontext"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/kafka"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/metrics"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/ordapi"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/render"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/session"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/tracing"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// SessionStore is the session manager capability the workflow consumes.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string, dest any) (bool, error)
	Save(ctx context.Context, sessionID, key string, value any) error
	Clear(ctx context.Context, sessionID string, keys ...string) error
}

// OrderAPI is the ORDAPI surface the workflow consumes.
type OrderAPI interface {
	GetOrderItem(ctx context.Context, orderID, orderItemID string) (*models.OrderItem, error)
	CreateOrderItem(ctx context.Context, orderID string, body ordapi.CreateOrderItemRequest) error
	UpdateOrderItem(ctx context.Context, orderID, orderItemID string, body ordapi.UpdateOrderItemRequest) error
}

// PricingAPI is the catalogue price lookup the new-item branch consumes.
type PricingAPI interface {
	GetPriceByID(ctx context.Context, priceID string) (*models.Price, error)
}

// EventPublisher publishes audit events after successful submissions.
type EventPublisher interface {
	Publish(ctx context.Context, event *kafka.OrderItemEvent) error
}

// Service drives the order item page workflow.
type Service struct {
	sessions  SessionStore
	orders    OrderAPI
	pricing   PricingAPI
	manifests *manifest.Provider
	events    EventPublisher
	logger    ectologger.Logger
}

// NewService creates the workflow service.
func NewService(
	sessions SessionStore,
	orders OrderAPI,
	pricing PricingAPI,
	manifests *manifest.Provider,
	events EventPublisher,
	logger ectologger.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		orders:    orders,
		pricing:   pricing,
		manifests: manifests,
		events:    events,
		logger:    logger,
	}
}

// PageRequest identifies one order item page.
type PageRequest struct {
	SessionID     string
	OrderID       string
	OrderItemType models.OrderItemType
	Item          ItemRef
}

// PageData is the assembled draft plus the page's manifest, ready for the
// context generators.
type PageData struct {
	Manifest *manifest.Manifest
	Draft    session.OrderItemDraft
}

// GetPageData assembles the page draft: from the wizard's session
// selections plus a price lookup for a new item, or from the persisted
// order item for an existing one. The draft is written to the session and
// is the source of truth for the following POST.
func (s *Service) GetPageData(ctx context.Context, req PageRequest) (*PageData, error) {
	ctx, span := tracing.StartSpan(ctx, "orderitem.GetPageData")
	defer span.End()

	var draft *session.OrderItemDraft
	var err error
	if req.Item.IsNew() {
		draft, err = s.newItemDraft(ctx, req)
	} else {
		draft, err = s.existingItemDraft(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	m, err := s.manifests.Get(manifest.Key{
		OrderItemType:    req.OrderItemType,
		PriceType:        draft.SelectedPrice.Type,
		ProvisioningType: draft.SelectedPrice.ProvisioningType,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, req.SessionID, session.KeyOrderItemPageData, draft); err != nil {
		return nil, err
	}

	return &PageData{Manifest: m, Draft: *draft}, nil
}

// newItemDraft seeds a draft from the selections the earlier wizard steps
// left in the session, plus a price lookup.
func (s *Service) newItemDraft(ctx context.Context, req PageRequest) (*session.OrderItemDraft, error) {
	draft := session.OrderItemDraft{FormData: models.FormValues{}}

	var priceID string
	for key, dest := range map[string]any{
		session.KeySelectedItemID:              &draft.ItemID,
		session.KeySelectedItemName:            &draft.ItemName,
		session.KeySelectedRecipientID:         &draft.ServiceRecipientID,
		session.KeySelectedRecipientName:       &draft.ServiceRecipientName,
		session.KeySelectedCatalogueSolutionID: &draft.CatalogueSolutionID,
		session.KeySelectedPriceID:             &priceID,
		session.KeyRecipients:                  &draft.Recipients,
		session.KeySelectedRecipients:          &draft.SelectedRecipients,
	} {
		if _, err := s.sessions.Get(ctx, req.SessionID, key, dest); err != nil {
			return nil, err
		}
	}

	if draft.ItemID == "" || priceID == "" {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "no catalogue item has been selected for this order")
	}

	price, err := s.pricing.GetPriceByID(ctx, priceID)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"order_id": req.OrderID,
			"price_id": priceID,
		}).Error("failed to look up the selected price")
		return nil, err
	}
	draft.SelectedPrice = *price
	draft.FormData.Set("price", render.FormatPriceValue(price.Price))

	var plannedDeliveryDate string
	if _, err := s.sessions.Get(ctx, req.SessionID, session.KeyPlannedDeliveryDate, &plannedDeliveryDate); err != nil {
		return nil, err
	}
	if plannedDeliveryDate != "" {
		day, month, year := validation.SplitDate(plannedDeliveryDate)
		draft.FormData.Set("deliveryDate-day", day)
		draft.FormData.Set("deliveryDate-month", month)
		draft.FormData.Set("deliveryDate-year", year)
	}

	return &draft, nil
}

// existingItemDraft rehydrates the draft from the persisted order item.
func (s *Service) existingItemDraft(ctx context.Context, req PageRequest) (*session.OrderItemDraft, error) {
	item, err := s.orders.GetOrderItem(ctx, req.OrderID, req.Item.ID())
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"order_id":      req.OrderID,
			"order_item_id": req.Item.ID(),
		}).Error("failed to fetch the order item")
		return nil, err
	}

	values := models.FormValues{}
	if item.Quantity > 0 {
		values.Set("quantity", strconv.Itoa(item.Quantity))
	}
	if item.EstimationPeriod != "" {
		values.Set("selectEstimationPeriod", item.EstimationPeriod)
	}
	if item.DeliveryDate != "" {
		day, month, year := validation.SplitDate(item.DeliveryDate)
		values.Set("deliveryDate-day", day)
		values.Set("deliveryDate-month", month)
		values.Set("deliveryDate-year", year)
	}
	values.Set("price", render.FormatPriceValue(item.Price))

	return &session.OrderItemDraft{
		ItemID:               item.CatalogueItemID,
		ItemName:             item.CatalogueItemName,
		ServiceRecipientID:   item.ServiceRecipient.OdsCode,
		ServiceRecipientName: item.ServiceRecipient.Name,
		SelectedPrice: models.Price{
			Type:             item.Type,
			ProvisioningType: item.ProvisioningType,
			CurrencyCode:     item.CurrencyCode,
			ItemUnit:         item.ItemUnit,
			TimeUnit:         item.TimeUnit,
			Price:            item.Price,
		},
		FormData: values,
	}, nil
}

// SubmitRequest is one POST of an order item page.
type SubmitRequest struct {
	SessionID     string
	OrderID       string
	OrderItemType models.OrderItemType
	Item          ItemRef
	Values        models.FormValues
}

// SubmitResult reports a submission outcome. A validation failure (local or
// remote) is a result, not an error: Errors feeds the same rendering
// pipeline the GET uses.
type SubmitResult struct {
	Success  bool
	Errors   []validation.Error
	Manifest *manifest.Manifest
	Draft    session.OrderItemDraft
}

// Submit validates the submitted values against the page manifest and calls
// the create or update operation for the item state. Remote validation
// failures are translated into the local error shape; any other remote
// failure is logged and re-thrown as an opaque error.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	ctx, span := tracing.StartSpan(ctx, "orderitem.Submit")
	defer span.End()

	var draft session.OrderItemDraft
	found, err := s.sessions.Get(ctx, req.SessionID, session.KeyOrderItemPageData, &draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "order item session data has expired")
	}

	m, err := s.manifests.Get(manifest.Key{
		OrderItemType:    req.OrderItemType,
		PriceType:        draft.SelectedPrice.Type,
		ProvisioningType: draft.SelectedPrice.ProvisioningType,
	})
	if err != nil {
		return nil, err
	}

	recipients := draft.SelectedRecipientList()

	var errs []validation.Error
	if m.SolutionTable != nil {
		errs = validation.ValidateOrderItemFormBulk(m, req.Values, len(recipients))
	} else {
		errs = validation.ValidateOrderItemForm(m, req.Values)
	}
	if len(errs) > 0 {
		metrics.ValidationFailuresTotal.WithLabelValues(string(req.OrderItemType), "local").Inc()
		return &SubmitResult{Errors: errs, Manifest: m, Draft: draft}, nil
	}

	if req.Item.IsNew() {
		err = s.orders.CreateOrderItem(ctx, req.OrderID, BuildCreateRequest(req.OrderItemType, &draft, m, req.Values))
	} else {
		err = s.orders.UpdateOrderItem(ctx, req.OrderID, req.Item.ID(), BuildUpdateRequest(m, req.Values))
	}

	if err != nil {
		var verr *ordapi.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailuresTotal.WithLabelValues(string(req.OrderItemType), "remote").Inc()
			return &SubmitResult{
				Errors:   validation.TransformAPIValidationResponse(verr.Response),
				Manifest: m,
				Draft:    draft,
			}, nil
		}

		metrics.OrderItemSubmissionsTotal.WithLabelValues(string(req.OrderItemType), "error").Inc()
		s.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"order_id":      req.OrderID,
			"order_item_id": req.Item.ID(),
			"item_id":       draft.ItemID,
			"recipients":    recipientOdsCodes(recipients),
		}).Error("failed to save the order item")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "unable to save order item")
	}

	if req.Item.IsNew() {
		if err := s.sessions.Clear(ctx, req.SessionID, session.SeedKeys()...); err != nil {
			// The draft was saved; a stale seed key is not worth failing
			// the submission over.
			s.logger.WithContext(ctx).WithError(err).Warn("failed to clear order item seed keys")
		}
	}

	s.publishSaved(ctx, req, &draft)
	metrics.OrderItemSubmissionsTotal.WithLabelValues(string(req.OrderItemType), "success").Inc()

	return &SubmitResult{Success: true, Manifest: m, Draft: draft}, nil
}

// publishSaved emits the audit event. Publishing is fire-and-forget: a
// broker failure is logged and never surfaced to the user.
func (s *Service) publishSaved(ctx context.Context, req SubmitRequest, draft *session.OrderItemDraft) {
	if s.events == nil {
		return
	}

	eventType := kafka.EventOrderItemUpdated
	if req.Item.IsNew() {
		eventType = kafka.EventOrderItemCreated
	}

	event := &kafka.OrderItemEvent{
		EventType:         eventType,
		OrderID:           req.OrderID,
		OrderItemType:     string(req.OrderItemType),
		CatalogueItemID:   draft.ItemID,
		CatalogueItemName: draft.ItemName,
		OdsCode:           appcontext.GetOrganisationID(ctx),
		UserID:            appcontext.GetUserID(ctx),
		Timestamp:         time.Now().UTC(),
		TraceID:           tracing.GetTraceID(ctx),
		SpanID:            tracing.GetSpanID(ctx),
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithField("order_id", req.OrderID).Warn("failed to publish order item event")
	}
}
