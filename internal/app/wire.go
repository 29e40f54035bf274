//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/config"
)

// InitializeApp wires repositories, handlers and the router into an App
func InitializeApp(db *gorm.DB, cfg *config.Config, publisher kafka.Publisher, registry *prometheus.Registry) (*App, error) {
	wire.Build(AppSet)
	return nil, nil
}
