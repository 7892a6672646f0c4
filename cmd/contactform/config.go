package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

type appConfig struct {
	Name string `env:"APP_NAME" envDefault:"contactform" validate:"required"`
	Env  string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
}

type contactConfig struct {
	ToastDuration time.Duration `env:"CONTACT_TOAST_DURATION" envDefault:"8s" validate:"gt=0"`
	RateCapacity  int           `env:"CONTACT_RATE_CAPACITY" envDefault:"10" validate:"gt=0"`
	RateRefill    int           `env:"CONTACT_RATE_REFILL" envDefault:"1" validate:"gt=0"`
	RateInterval  time.Duration `env:"CONTACT_RATE_INTERVAL" envDefault:"6s" validate:"gt=0"`
	// Proxy headers trusted for the client address, highest priority first.
	TrustedIPHeaders []string `env:"CONTACT_TRUSTED_IP_HEADERS" envSeparator:","`
}

type config struct {
	App     appConfig
	HTTP    httpserver.Config
	Contact contactConfig
	Log     logger.FileConfig
}

var errWriteTimeoutTooShort = errors.New("HTTP_WRITE_TIMEOUT must exceed CONTACT_TOAST_DURATION")

// validate checks rules spanning several sections. A submit stream stays
// open for the toast duration, so the write timeout has to outlast it.
func (c config) validate() error {
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= c.Contact.ToastDuration {
		return fmt.Errorf("%w: %s <= %s", errWriteTimeoutTooShort, c.HTTP.WriteTimeout, c.Contact.ToastDuration)
	}
	return nil
}
