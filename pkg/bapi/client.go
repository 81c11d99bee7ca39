// Package bapi is the adapter for the buying catalogue API: catalogue item
// and price lookups.
package bapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/httpclient"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/tracing"
)

// Client calls the buying catalogue API.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  ectologger.Logger
}

// NewClient creates a catalogue API client rooted at baseURL.
func NewClient(baseURL string, http *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
		logger:  logger,
	}
}

// GetPriceByID fetches a catalogue price by its id. A price that no longer
// exists propagates as the remote status; there is no special-cased
// recovery.
func (c *Client) GetPriceByID(ctx context.Context, priceID string) (*models.Price, error) {
	ctx, span := tracing.StartSpan(ctx, "bapi.GetPriceByID")
	defer span.End()

	reqURL := fmt.Sprintf("%s/api/v1/prices/%s", c.baseURL, url.PathEscape(priceID))
	resp, err := c.http.DoJSON(ctx, http.MethodGet, reqURL, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, httperror.NewHTTPErrorf(resp.StatusCode, "catalogue api returned status %d fetching price %s", resp.StatusCode, priceID)
	}

	var price models.Price
	if err := resp.Decode(&price); err != nil {
		return nil, err
	}

	return &price, nil
}
