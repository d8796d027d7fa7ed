// Package webserver bootstraps the echo server that exposes the admin
// API. Handlers register themselves through the Api helpers.
package webserver

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/config"
)

type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
	api  *echo.Group
}

var server *WebServer

// Init creates the global server instance with the given middlewares
// applied to the /admin group
func Init(cfg *config.AppConfig, middlewares ...echo.MiddlewareFunc) *WebServer {
	root := echo.New()
	root.HideBanner = true
	root.HidePort = true
	root.Use(middleware.Recover())

	server = &WebServer{
		cfg:  cfg,
		root: root,
		api:  root.Group("/admin", middlewares...),
	}
	return server
}

// Start serves until the listener fails or Stop is called
func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.S().Infof("admin api listening on %s", addr)
	return s.root.Start(addr)
}

func (s *WebServer) Stop(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// Echo exposes the underlying instance (used in tests)
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}
