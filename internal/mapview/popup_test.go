package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

func TestRenderPopupListing(t *testing.T) {
	rec := listing("p1", `Villa <b>"deluxe"</b>`, "Block C, Royal Palm", records.CategoryBuy, 25000000)
	rec.Bedrooms = 4
	rec.Owner = &records.OwnerRef{CompanyName: "Palm Estates", Phone: "+92 321 5550000"}

	html, err := RenderPopup(rec)
	require.NoError(t, err)

	assert.Contains(t, html, "Villa &lt;b&gt;&#34;deluxe&#34;&lt;/b&gt;")
	assert.Contains(t, html, "PKR 2.5 Cr")
	assert.Contains(t, html, "<dt>Area:</dt><dd>N/A</dd>")
	assert.Contains(t, html, "For Sale")
	assert.Contains(t, html, "<dt>Beds:</dt><dd>4</dd>")
	assert.Contains(t, html, "Palm Estates")
	assert.Contains(t, html, `href="https://wa.me/923215550000?text=Interested&#43;in&#43;Villa`)
	assert.Contains(t, html, `href="tel:&#43;923215550000"`)
}

func TestRenderPopupPlotUsesFallbackNumber(t *testing.T) {
	rec := records.LocationRecord{
		ID: "C-2", Variant: records.VariantPlots, Title: "Block C Plot 2",
		Lat: utils.Ptr(32.0), Lng: utils.Ptr(74.0),
		Category: records.CategoryReserved, Block: "C", PlotNumber: "2",
		Size: "5 marla", PriceText: "65.00 Lakh",
	}
	html, err := RenderPopup(rec)
	require.NoError(t, err)

	assert.Contains(t, html, "<dt>Status:</dt><dd>Reserved</dd>")
	assert.Contains(t, html, "65.00 Lakh")
	assert.Contains(t, html, "https://wa.me/923001234567?text=Interested")
	assert.NotContains(t, html, "Beds")
	assert.NotContains(t, html, "popup-dealer")
}
