package instance

import "os"

// GetID returns the server instance identifier used in log fields. Falls back
// to the hostname, then a static default for local runs.
func GetID() string {
	if id := os.Getenv("UDONGSI_INSTANCE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
