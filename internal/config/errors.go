package config

import "errors"

// ErrInvalid is returned by [Config.Validate] for out of range settings.
var ErrInvalid = errors.New("config: invalid setting")
