// Package app wires the storage gateway, repositories, views and
// background jobs into one application lifecycle.
package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kizzez/cafeadmin/config"
	"github.com/kizzez/cafeadmin/internal/activity"
	"github.com/kizzez/cafeadmin/internal/adminapi"
	"github.com/kizzez/cafeadmin/internal/dashboard"
	"github.com/kizzez/cafeadmin/internal/repository"
	"github.com/kizzez/cafeadmin/internal/store"
)

type Application struct {
	appConfig *config.AppConfig
	gateway   store.Gateway
	bus       EventBus.Bus
	sched     *cron.Cron

	recorder   *activity.Recorder
	products   *repository.ProductRepository
	orders     *repository.OrderRepository
	coupons    *repository.CouponRepository
	aggregator *dashboard.Aggregator
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider      = (*Application)(nil)
	_ StoreProvider       = (*Application)(nil)
	_ BusProvider         = (*Application)(nil)
	_ adminapi.AppContext = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Init() error {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	initLogger(a.appConfig.Logger)

	gw, err := store.Open(a.appConfig.Storage.Path)
	if err != nil {
		return err
	}
	a.gateway = gw
	zap.S().Infof("collection store opened: %s", a.appConfig.Storage.Path)

	if err := store.EnsureInitialData(a.gateway); err != nil {
		return err
	}

	a.bus = EventBus.New()
	a.recorder = activity.NewRecorder(a.gateway, a.bus)
	a.products = repository.NewProductRepository(a.gateway, a.recorder, a.bus)
	a.orders = repository.NewOrderRepository(a.gateway, a.recorder, a.bus)
	a.coupons = repository.NewCouponRepository(a.gateway, a.recorder, a.bus)
	a.aggregator = dashboard.NewAggregator(a.gateway)

	a.initJob()
	return nil
}

// OverrideStore replaces the gateway and rebuilds the components on top
// of it (used in tests)
func (a *Application) OverrideStore(gw store.Gateway) {
	a.gateway = gw
	a.bus = EventBus.New()
	a.recorder = activity.NewRecorder(gw, a.bus)
	a.products = repository.NewProductRepository(gw, a.recorder, a.bus)
	a.orders = repository.NewOrderRepository(gw, a.recorder, a.bus)
	a.coupons = repository.NewCouponRepository(gw, a.recorder, a.bus)
	a.aggregator = dashboard.NewAggregator(gw)
}

func initLogger(cfg config.LoggerConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) Config() *config.AppConfig { return a.appConfig }

func (a *Application) Store() store.Gateway { return a.gateway }

func (a *Application) Bus() EventBus.Bus { return a.bus }

func (a *Application) Products() *repository.ProductRepository { return a.products }

func (a *Application) Orders() *repository.OrderRepository { return a.orders }

func (a *Application) Coupons() *repository.CouponRepository { return a.coupons }

func (a *Application) Activity() *activity.Recorder { return a.recorder }

func (a *Application) Dashboard() *dashboard.Aggregator { return a.aggregator }

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.gateway != nil {
		_ = a.gateway.Close()
	}
	_ = zap.L().Sync()
}
