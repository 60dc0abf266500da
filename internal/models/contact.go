package models

import "strings"

// Contact is a read-only address book entry synced from the device.
type Contact struct {
	ID          string `db:"id" json:"id"`
	DisplayName string `db:"display_name" json:"display_name"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
}

// NormalizeNumber keeps digits and a leading plus.
func NormalizeNumber(number string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(number) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
