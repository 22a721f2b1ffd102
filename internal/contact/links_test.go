package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "923001234567", SanitizePhone("+92 (300) 123-4567"))
	assert.Equal(t, "", SanitizePhone("n/a"))
	assert.Equal(t, "12", SanitizePhone("1٣2")) // non-ASCII digits dropped
}

func TestWhatsAppLink(t *testing.T) {
	got := WhatsAppLink("+92 300 1234567", "Interested in 5 Marla House & Lawn")
	assert.Equal(t, "https://wa.me/923001234567?text=Interested+in+5+Marla+House+%26+Lawn", got)
}

func TestTelLink(t *testing.T) {
	assert.Equal(t, "tel:+923001234567", TelLink("+92 300 1234567"))
}

func TestForUsesFallback(t *testing.T) {
	links := For("", PlotInterestMessage("B", "3"))
	assert.Equal(t, "https://wa.me/923001234567?text=Interested+in+Block+B+Plot+3", links.WhatsApp)
	assert.Equal(t, "tel:923001234567", links.Call)

	links = For("0300-7654321", ListingInterestMessage("Corner plot"))
	assert.Equal(t, "https://wa.me/03007654321?text=Interested+in+Corner+plot", links.WhatsApp)
	assert.Equal(t, "tel:0300-7654321", links.Call)
}
