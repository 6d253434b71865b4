package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// The catalog the reference deployment ships with.
	DefaultRooms = "Room A,Room B,Room C"

	DefaultOfficeOpen  = "08:00"
	DefaultOfficeClose = "18:00"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultEventsEnabled  = false
	DefaultEventsTopic    = "reservations.events"
	DefaultEventsDLQTopic = "reservations.events.dlq"

	DefaultPaginationLimit = 100
)
