package seometa

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	headContextKey = "seometa.head"
	pathContextKey = "seometa.path"
)

// MiddlewareConfig configures the echo middleware.
type MiddlewareConfig struct {
	// Skipper skips requests that do not render pages (assets, feeds, APIs).
	Skipper middleware.Skipper
}

// Middleware returns echo middleware that makes h available to handlers
// for the current request path.
func (h *Head) Middleware() echo.MiddlewareFunc {
	return h.MiddlewareWithConfig(MiddlewareConfig{})
}

// MiddlewareWithConfig is Middleware with a custom configuration.
func (h *Head) MiddlewareWithConfig(cfg MiddlewareConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}
			c.Set(headContextKey, h)
			c.Set(pathContextKey, c.Request().URL.Path)
			return next(c)
		}
	}
}

// HeadTags returns the head tags for the request path with o applied, or nil
// when the middleware did not run for this request.
func HeadTags(c echo.Context, o Overrides) []Tag {
	h, path, ok := fromContext(c)
	if !ok {
		return nil
	}
	return h.Tags(path, o)
}

// HeadComponent returns the templ head component for the request path. It
// renders nothing when the middleware did not run for this request.
func HeadComponent(c echo.Context, o Overrides) templ.Component {
	h, path, ok := fromContext(c)
	if !ok {
		c.Logger().Warnf("seometa: no head metadata for %s", c.Request().URL.Path)
		return templ.NopComponent
	}
	return h.Component(path, o)
}

func fromContext(c echo.Context) (*Head, string, bool) {
	h, ok := c.Get(headContextKey).(*Head)
	if !ok || h == nil {
		return nil, "", false
	}
	path, _ := c.Get(pathContextKey).(string)
	return h, path, true
}
