// Package ordapi is the adapter for the remote order management API that
// persists orders and order items.
package ordapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/httpclient"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/tracing"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// ValidationError is returned when ORDAPI rejects a create or update with a
// structured 400 body. The caller translates it back into the page's error
// rendering pipeline.
type ValidationError struct {
	Response validation.APIValidationResponse
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order api rejected the order item with %d invalid fields", len(e.Response.Fields))
}

// Client calls ORDAPI.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  ectologger.Logger
}

// NewClient creates an ORDAPI client rooted at baseURL.
func NewClient(baseURL string, http *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
		logger:  logger,
	}
}

func (c *Client) orderItemsURL(orderID string) string {
	return fmt.Sprintf("%s/api/v1/orders/%s/order-items", c.baseURL, url.PathEscape(orderID))
}

// GetOrderItem fetches a persisted order item by order id and item id.
func (c *Client) GetOrderItem(ctx context.Context, orderID, orderItemID string) (*models.OrderItem, error) {
	ctx, span := tracing.StartSpan(ctx, "ordapi.GetOrderItem")
	defer span.End()

	reqURL := fmt.Sprintf("%s/%s", c.orderItemsURL(orderID), url.PathEscape(orderItemID))
	resp, err := c.http.DoJSON(ctx, http.MethodGet, reqURL, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, httperror.NewHTTPErrorf(resp.StatusCode, "order api returned status %d fetching order item %s", resp.StatusCode, orderItemID)
	}

	var item models.OrderItem
	if err := resp.Decode(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

// CreateOrderItem creates a new order item on the order. A structured 400
// surfaces as *ValidationError.
func (c *Client) CreateOrderItem(ctx context.Context, orderID string, body CreateOrderItemRequest) error {
	ctx, span := tracing.StartSpan(ctx, "ordapi.CreateOrderItem")
	defer span.End()

	resp, err := c.http.DoJSON(ctx, http.MethodPost, c.orderItemsURL(orderID), body, nil)
	if err != nil {
		return err
	}

	return c.classify(ctx, resp, "creating order item on order "+orderID)
}

// UpdateOrderItem updates an existing order item. A structured 400 surfaces
// as *ValidationError.
func (c *Client) UpdateOrderItem(ctx context.Context, orderID, orderItemID string, body UpdateOrderItemRequest) error {
	ctx, span := tracing.StartSpan(ctx, "ordapi.UpdateOrderItem")
	defer span.End()

	reqURL := fmt.Sprintf("%s/%s", c.orderItemsURL(orderID), url.PathEscape(orderItemID))
	resp, err := c.http.DoJSON(ctx, http.MethodPut, reqURL, body, nil)
	if err != nil {
		return err
	}

	return c.classify(ctx, resp, "updating order item "+orderItemID)
}

func (c *Client) classify(ctx context.Context, resp *httpclient.Response, action string) error {
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		var body validation.APIValidationResponse
		if err := json.Unmarshal(resp.Body, &body); err == nil && len(body.Fields) > 0 {
			return &ValidationError{Response: body}
		}
		c.logger.WithContext(ctx).Warnf("order api returned 400 without a structured error body while %s", action)
	}

	return httperror.NewHTTPErrorf(resp.StatusCode, "order api returned status %d while %s", resp.StatusCode, action)
}
