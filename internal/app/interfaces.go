package app

import (
	"github.com/asaskevich/EventBus"

	"github.com/kizzez/cafeadmin/config"
	"github.com/kizzez/cafeadmin/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides collection store access
type StoreProvider interface {
	Store() store.Gateway
}

// BusProvider provides the render event bus
type BusProvider interface {
	Bus() EventBus.Bus
}
