package common

import (
	"github.com/coolify-tools/coolify-ctl/internal/config"
)

// GetAuth validates that both halves of the connection configuration are
// present before any command talks to the instance.
func GetAuth() (instanceURL, token string, err error) {
	instanceURL, err = config.GetInstanceURL()
	if err != nil {
		return
	}
	token, err = config.GetToken()
	return
}
