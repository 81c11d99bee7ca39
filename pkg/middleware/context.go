package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/appcontext"
)

const (
	// SessionCookieName is the cookie carrying the browser session id the
	// draft store is scoped to.
	SessionCookieName = "order-form-session"
)

func Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()

			// get request id from header
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			// session id comes from the session cookie; a missing cookie
			// means a fresh browser session
			sessionID := ""
			if cookie, cerr := c.Cookie(SessionCookieName); cerr == nil {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			ctx := req.Context()
			ctx = appcontext.SetRequestID(ctx, requestID)
			ctx = appcontext.SetMethod(ctx, req.Method)
			ctx = appcontext.SetRoute(ctx, req.URL.Path)
			ctx = appcontext.SetRemoteIP(ctx, c.RealIP())
			ctx = appcontext.SetReferer(ctx, req.Referer())
			ctx = appcontext.SetSessionID(ctx, sessionID)

			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
