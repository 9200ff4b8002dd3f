package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const dnsTimeout = 3 * time.Second

// IsEmailDomainValid verifica que el dominio del correo resuelva (MX o
// A/AAAA). El registro de mostrador y el portal no exigen confirmación
// por correo, así que esto es lo único que frena un dominio con tipeo
// ("gmial.com") antes de guardarlo.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
