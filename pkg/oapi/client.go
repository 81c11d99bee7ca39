// Package oapi is the adapter for the organisation directory API.
package oapi

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

// Client calls the organisation directory.
type Client struct {
	baseURL string
	http    *httpclient.Client
	logger  ectologger.Logger
}

// NewClient creates an organisation API client rooted at baseURL.
func NewClient(baseURL string, http *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
		logger:  logger,
	}
}

// GetServiceRecipients lists the service recipient organisations under the
// ordering organisation's ODS code.
func (c *Client) GetServiceRecipients(ctx context.Context, odsCode string) ([]models.ServiceRecipient, error) {
	ctx, span := tracing.StartSpan(ctx, "oapi.GetServiceRecipients")
	defer span.End()

	reqURL := fmt.Sprintf("%s/api/v1/organisations/%s/service-recipients", c.baseURL, url.PathEscape(odsCode))
	resp, err := c.http.DoJSON(ctx, http.MethodGet, reqURL, nil, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, httperror.NewHTTPErrorf(resp.StatusCode, "organisation api returned status %d listing service recipients for %s", resp.StatusCode, odsCode)
	}

	var recipients []models.ServiceRecipient
	if err := resp.Decode(&recipients); err != nil {
		return nil, err
	}

	return recipients, nil
}
