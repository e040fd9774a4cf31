// Package services: services/whatsapp_service.go
package services

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultSupportNumber is the support desk's WhatsApp contact.
const DefaultSupportNumber = "244957729023"

// WhatsAppLink builds the wa.me deep link for a phone number, stripping
// every non-digit character. An empty or digit-free input falls back to the
// support desk number.
func WhatsAppLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	target := digits.String()
	if target == "" {
		target = DefaultSupportNumber
	}
	return "https://wa.me/" + target
}

// QRCodeEncoder lets tests substitute the PNG encoder.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateWhatsAppQRCode renders the deep link for a phone number as a PNG
// QR code of the given size.
func GenerateWhatsAppQRCode(phone string, size int, encode QRCodeEncoder) ([]byte, error) {
	return encode(WhatsAppLink(phone), qrcode.Medium, size)
}
