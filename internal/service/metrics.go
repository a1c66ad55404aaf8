package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_orders_placed_total",
		Help: "Orders committed through checkout.",
	})

	ordersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_orders_deleted_total",
		Help: "Orders removed through the admin deletion flow.",
	})
)
