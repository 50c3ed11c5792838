package validators

import "strings"

// NormalizePhone mantém só os dígitos do telefone informado no
// formulário (o site aceita "(11) 98765-4321", "+55 11...", etc).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid exige um mínimo de dígitos; a regra de fronteira do site
// é apenas "não vazio", aqui com uma folga contra lixo óbvio.
func IsPhoneValid(phone string) bool {
	return len(NormalizePhone(phone)) >= 8
}
