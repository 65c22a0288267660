// Package observability содержит метрики Prometheus сервиса.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения метки operation для RelationMutations.
const (
	OperationLikeAdd      = "like_add"
	OperationLikeRemove   = "like_remove"
	OperationFriendAdd    = "friend_add"
	OperationFriendRemove = "friend_remove"
)

// Значения метки result для PopularCacheLookups.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filmorate_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records HTTP handler latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "filmorate_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// RelationMutations counts successful like and friendship mutations.
	RelationMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filmorate_relation_mutations_total",
		Help: "Total number of like and friendship mutations",
	}, []string{"operation"})

	// PopularCacheLookups counts popularity ranking cache lookups by result.
	PopularCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filmorate_popular_cache_lookups_total",
		Help: "Popularity ranking cache lookups by result",
	}, []string{"result"})
)
