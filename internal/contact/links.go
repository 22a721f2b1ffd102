// Package contact builds the messaging and dial links attached to listings.
package contact

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

const whatsAppBase = "https://wa.me/"

// SanitizePhone keeps digits only.
func SanitizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, phone)
}

// PhoneOrFallback returns the phone if it has any digits, else the fixed
// office number.
func PhoneOrFallback(phone string) string {
	if SanitizePhone(phone) == "" {
		return utils.FallbackDealerPhone
	}
	return phone
}

// WhatsAppLink is https://wa.me/<digits>?text=<encoded message>.
func WhatsAppLink(phone, message string) string {
	return whatsAppBase + SanitizePhone(phone) + "?text=" + url.QueryEscape(message)
}

// TelLink is tel:<phone> with whitespace removed.
func TelLink(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

func PlotInterestMessage(block, plotNumber string) string {
	return fmt.Sprintf("Interested in Block %s Plot %s", block, plotNumber)
}

func ListingInterestMessage(title string) string {
	return "Interested in " + title
}

// Links is the pair of actions shown in popups and the details panel.
type Links struct {
	WhatsApp string `json:"whatsapp"`
	Call     string `json:"call"`
}

func For(phone, message string) Links {
	phone = PhoneOrFallback(phone)
	return Links{
		WhatsApp: WhatsAppLink(phone, message),
		Call:     TelLink(phone),
	}
}
