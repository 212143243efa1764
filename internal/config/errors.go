package config

import "github.com/pkg/errors"

var (
	ErrInstanceURLNotConfigured = errors.New("instance URL not configured, run 'coolify-ctl configure --instance-url <url>' or set " + EnvInstanceURL)
	ErrTokenNotConfigured       = errors.New("API token not configured, run 'coolify-ctl configure --token <token>' or set " + EnvToken)
	ErrTokenExpired             = errors.New("token rejected by the instance, configure a new API token")
	ErrUnauthorized             = errors.New("the configured token is not authorized to perform this action")
)
