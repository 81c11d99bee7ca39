package orderitem

import (
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/appcontext"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/orderitem"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/render"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/utils"
)

// Register registers the order item page routes
func Register(g *echo.Group) {
	g.GET("/:orderId/:orderItemType/:orderItemId", GetOrderItemPage)
	g.POST("/:orderId/:orderItemType/:orderItemId", PostOrderItemPage)
}

// GetOrderItemPage renders the order item page for a new or existing item
func GetOrderItemPage(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := pageRequest(c)
	if err != nil {
		return err
	}

	ctx, service, err := ectoinject.GetContext[*orderitem.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "order item service unavailable")
	}

	page, err := service.GetPageData(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, render.NewPageContext(render.PageParams{
		Manifest:   page.Manifest,
		ItemName:   page.Draft.ItemName,
		Values:     page.Draft.FormData,
		Price:      page.Draft.SelectedPrice,
		Recipients: page.Draft.SelectedRecipientList(),
	}))
}

// PostOrderItemPage validates a submitted order item page and saves the item
func PostOrderItemPage(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := pageRequest(c)
	if err != nil {
		return err
	}

	values, err := formValues(c)
	if err != nil {
		return httperror.WrapError(http.StatusBadRequest, err)
	}

	ctx, service, err := ectoinject.GetContext[*orderitem.Service](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "order item service unavailable")
	}

	result, err := service.Submit(ctx, orderitem.SubmitRequest{
		SessionID:     req.SessionID,
		OrderID:       req.OrderID,
		OrderItemType: req.OrderItemType,
		Item:          req.Item,
		Values:        values,
	})
	if err != nil {
		return err
	}

	if !result.Success {
		return c.JSON(http.StatusBadRequest, render.NewPageContext(render.PageParams{
			Manifest:   result.Manifest,
			ItemName:   result.Draft.ItemName,
			Values:     values,
			Errors:     result.Errors,
			Price:      result.Draft.SelectedPrice,
			Recipients: result.Draft.SelectedRecipientList(),
		}))
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/organisation/%s/%s", req.OrderID, req.OrderItemType))
}

// OrderItemPageParams are the route parameters shared by the GET and POST
// of an order item page.
type OrderItemPageParams struct {
	OrderID       string `param:"orderId" validate:"required"`
	OrderItemType string `param:"orderItemType" validate:"required,oneof=catalogue-solutions additional-services associated-services"`
	OrderItemID   string `param:"orderItemId" validate:"required"`
}

func pageRequest(c echo.Context) (orderitem.PageRequest, error) {
	params, err := utils.BindRequest[OrderItemPageParams](c)
	if err != nil {
		return orderitem.PageRequest{}, err
	}

	sessionID := appcontext.GetSessionID(c.Request().Context())
	if sessionID == "" {
		return orderitem.PageRequest{}, httperror.NewHTTPError(http.StatusBadRequest, "no session")
	}

	return orderitem.PageRequest{
		SessionID:     sessionID,
		OrderID:       params.OrderID,
		OrderItemType: models.OrderItemType(params.OrderItemType),
		Item:          orderitem.ParseItemRef(params.OrderItemID),
	}, nil
}

// formValues collects the posted form body, preserving repeated fields in
// submission order. The anti-forgery token is not part of the page data.
func formValues(c echo.Context) (models.FormValues, error) {
	if err := c.Request().ParseForm(); err != nil {
		return nil, err
	}

	values := models.FormValues{}
	for key, vals := range c.Request().PostForm {
		if key == "_csrf" {
			continue
		}
		values[key] = vals
	}

	return values, nil
}
