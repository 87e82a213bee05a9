package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// IsEmailDomainValid accepts an address whose domain has an MX or A record.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var r net.Resolver

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
