package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/config"
	"github.com/kizzez/cafeadmin/internal/adminapi"
	"github.com/kizzez/cafeadmin/internal/app"
	"github.com/kizzez/cafeadmin/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
	port     = flag.Int("p", 0, "admin api port override")
)

var (
	BuildVersion = "latest"
	BuildTime    = "unknown"
)

func printVersion() {
	fmt.Printf("cafeadmd %s (built %s)\n", BuildVersion, BuildTime)
}

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		return
	}
	if *showVer {
		printVersion()
		return
	}

	cfg := config.LoadConfig(*conffile)
	if *port > 0 {
		cfg.Web.Port = *port
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %s\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ws := webserver.Init(cfg, adminapi.InjectApp(application))
	adminapi.RegisterRoutes()

	errCh := make(chan error, 1)
	go func() {
		errCh <- ws.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zap.S().Errorf("admin api stopped: %s", err)
	case sig := <-quit:
		zap.S().Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ws.Stop(ctx); err != nil {
			zap.S().Errorf("shutdown error: %s", err)
		}
	}
}
