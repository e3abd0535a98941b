package mail

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/adetunji/coldreach/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// text/template on purpose: the bodies are trusted boilerplate and the
// interpolated name/company are inserted verbatim, markup and all.
var bodyTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RenderBody renders the HTML body for the given variant with the
// recipient's first name and company. An unknown variant falls back to
// ways_to_add_to_team rather than failing.
func RenderBody(emailType, name, company string) string {
	if !entity.ValidEmailType(emailType) {
		emailType = entity.EmailTypeWaysToAddToTeam
	}

	var body bytes.Buffer
	if err := bodyTemplates.ExecuteTemplate(&body, emailType+".html", TemplateData{
		Name:    name,
		Company: company,
	}); err != nil {
		// Templates are embedded and only reference .Name/.Company, so this
		// only trips if a template file itself is broken.
		panic(err)
	}
	return body.String()
}

// DeliverySubject is the subject line used by the lead sender. It depends on
// the variant only, never on the body.
func DeliverySubject(emailType, company string) string {
	switch emailType {
	case entity.EmailTypeOpportunitySaw:
		return "30 seconds of your time is all I need"
	case entity.EmailTypeLoveTheirWork:
		return "I love your work at " + company
	case entity.EmailTypeWaysToAddToTeam:
		return "3 ways I can add to your team"
	default:
		return "I love your work at " + company
	}
}

// ComposeSubject is the subject line used by the manual compose server: one
// line for every variant.
func ComposeSubject(_ string) string {
	return "30 seconds of your time is all I need"
}
