package config

import "errors"

var (
	errNoDatabaseDSN  = errors.New("database DSN is not specified")
	errNoTokenSignKey = errors.New("token sign key is not specified")
)
