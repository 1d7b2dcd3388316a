package util

import (
	"net/http"
	"time"

	"github.com/dreamcanvas/dream-api/common/config"
)

var HTTPClient *http.Client

func init() {
	if config.RelayTimeout == 0 {
		HTTPClient = &http.Client{}
	} else {
		HTTPClient = &http.Client{
			Timeout: time.Duration(config.RelayTimeout) * time.Second,
		}
	}
}
