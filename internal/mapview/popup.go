package mapview

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/AliHaider728/royal-palm-map-clone/internal/contact"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
)

var popupTmpl = template.Must(template.New("popup").Parse(`<div class="plot-popup">
<div class="popup-title">{{.Title}}</div>
{{- if .Location}}
<div class="popup-location">{{.Location}}</div>
{{- end}}
<dl class="popup-fields">
{{- range .Rows}}
<dt>{{.Label}}:</dt><dd{{if .Class}} class="{{.Class}}"{{end}}>{{.Value}}</dd>
{{- end}}
</dl>
{{- if .Dealer}}
<div class="popup-dealer">{{.Dealer}}</div>
{{- end}}
<div class="popup-actions">
<a class="whatsapp" href="{{.WhatsApp}}" target="_blank" rel="noopener noreferrer">WhatsApp</a>
<a class="call {{.Class}}" href="{{.Call}}">Call</a>
</div>
</div>`))

type popupRow struct {
	Label string
	Value string
	Class string
}

type popupData struct {
	Title    string
	Location string
	Rows     []popupRow
	Dealer   string
	Class    string
	WhatsApp template.URL
	Call     template.URL
}

// ContactLinks picks the owner phone (or the office fallback) and the
// variant-specific interest message.
func ContactLinks(r records.LocationRecord) contact.Links {
	var phone string
	if r.Owner != nil {
		phone = r.Owner.Phone
	}
	msg := contact.ListingInterestMessage(r.Title)
	if r.Variant == records.VariantPlots {
		msg = contact.PlotInterestMessage(r.Block, r.PlotNumber)
	}
	return contact.For(phone, msg)
}

// RenderPopup produces the escaped popup HTML for a record.
func RenderPopup(r records.LocationRecord) (string, error) {
	links := ContactLinks(r)
	class := MarkerClass(r.Category)
	data := popupData{
		Title:    r.Title,
		Location: r.Location,
		Dealer:   r.Owner.DisplayName(),
		Class:    class,
		// Built by the contact package from sanitized parts; tel: would
		// otherwise be rejected by the template's URL filter.
		WhatsApp: template.URL(links.WhatsApp),
		Call:     template.URL(links.Call),
	}

	if r.Variant == records.VariantPlots {
		data.Rows = []popupRow{
			{Label: "Block", Value: r.Block},
			{Label: "Plot #", Value: r.PlotNumber},
			{Label: "Size", Value: r.Size},
			{Label: "Price", Value: r.PriceText, Class: class},
			{Label: "Status", Value: CategoryLabel(r.Category)},
		}
	} else {
		area := r.Area
		if area == "" {
			area = "N/A"
		}
		data.Rows = []popupRow{
			{Label: "Price", Value: FormatListingPrice(r.Category, r.Price), Class: class},
			{Label: "Area", Value: area},
			{Label: "Type", Value: CategoryLabel(r.Category)},
		}
		if r.Bedrooms > 0 {
			data.Rows = append(data.Rows, popupRow{Label: "Beds", Value: strconv.Itoa(r.Bedrooms)})
		}
	}

	var buf bytes.Buffer
	if err := popupTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
