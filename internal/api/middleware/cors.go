package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS permits requests from any origin with any headers and
// methods unless a comma-separated allow-list of domains is configured.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"*"},
		MaxAge:       12 * time.Hour,
	}

	var domains []string
	for _, domain := range strings.Split(allowedDomains, ",") {
		if d := strings.TrimSpace(domain); d != "" {
			domains = append(domains, d)
		}
	}

	if len(domains) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = domains
	}

	return cors.New(conf)
}
