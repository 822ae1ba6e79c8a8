package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid checks that the address parses and that its domain
// resolves (MX preferred, any A/AAAA record accepted). Best effort: a DNS
// outage makes this return false, which only blocks registration.
func IsEmailDomainValid(email string) bool {
	if _, err := mail.ParseAddress(email); err != nil {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
