package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid verifica no registro se o domínio do e-mail
// existe (MX ou, na falta dele, um A/AAAA qualquer). Evita contas
// criadas com domínios digitados errado.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
