package main

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	logLevel

	mongoURI
	mongoDatabase

	geocoderProvider
	geocoderAPIKey
	geocoderURL
	geocoderFile
	geocoderCacheTTL

	notificationsFile
	enableMessaging
)
