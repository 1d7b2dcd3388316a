package config

import (
	"os"
	"strings"

	"github.com/dreamcanvas/dream-api/common/env"
	"github.com/google/uuid"
)

var SystemName = "DreamCanvas"
var ServerAddress = env.String("SERVER_ADDRESS", "http://localhost:3000")

var ServiceName = env.String("SERVICE_NAME", "dream-api")
var InstanceId = strings.Split(uuid.New().String(), "-")[0]

var DebugEnabled = env.Bool("DEBUG", false)

// Passwords is the access allow-list, parsed once at startup from the
// comma-separated PASSWORDS variable. An empty list disables the gate.
var Passwords = ParsePasswords(os.Getenv("PASSWORDS"))

func ParsePasswords(raw string) []string {
	if raw == "" {
		return nil
	}
	var passwords []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			passwords = append(passwords, p)
		}
	}
	return passwords
}

// PasswordRequired reports whether the access gate is enabled.
func PasswordRequired() bool {
	return len(Passwords) > 0
}

// Workers AI upstream settings
var AiApiBase = env.String("AI_API_BASE", "https://api.cloudflare.com/client/v4")
var AiAccountId = os.Getenv("AI_ACCOUNT_ID")
var AiApiToken = os.Getenv("AI_API_TOKEN")

var RelayTimeout = env.Int("RELAY_TIMEOUT", 0) // unit is second
