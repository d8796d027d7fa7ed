package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/events"
	"github.com/kizzez/cafeadmin/internal/store"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err = a.sched.AddFunc("@every 5m", func() {
		a.SchedLowStockScanTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedLowStockScanTask logs catalog items at or below the stock
// threshold and refreshes the dashboard view
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	products, err := store.Read[domain.Product](a.gateway, domain.CollectionProducts)
	if err != nil {
		zap.S().Errorf("low stock scan failed: %s", err)
		return
	}

	for _, p := range products {
		if p.LowStock() {
			zap.S().Warnf("Stock bajo: %s (%d)", p.Name, p.Stock)
		}
	}
	a.bus.Publish(events.TopicDashboard)
}
