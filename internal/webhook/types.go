package webhook

// SecurityConfig holds channel endpoint security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification (optional)
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source IP
}
