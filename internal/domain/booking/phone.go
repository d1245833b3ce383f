package booking

import "strings"

// NormalizePhone reduz o telefone a dígitos. Idempotente: normalizar um
// telefone já normalizado devolve a mesma string.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
