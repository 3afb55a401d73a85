package email

import (
	"bytes"
	"fmt"
	"html/template"

	"artisthub-backend/internal/shared"
)

type commissionTemplate struct {
	subject string
	body    *template.Template
}

type templateData struct {
	Recipient    shared.UserBasicInfo
	Artist       shared.UserBasicInfo
	Commissioner shared.UserBasicInfo
	CommissionID string
	Title        string
	Price        string
	Link         string
}

const layout = `<p>Hi {{.Recipient.FullName}},</p>
{{template "content" .}}
<p><a href="{{.Link}}">View the commission</a></p>
<p>ArtistHub</p>`

var commissionTemplates = map[shared.NotificationKind]commissionTemplate{
	shared.NotifyRequested: mustTemplate("New commission request: %s",
		`<p>{{.Commissioner.FullName}} ({{.Commissioner.Email}}) has requested a commission from you: <b>{{.Title}}</b>.</p>
<p>Set a price to let them know you're interested, or deny the request.</p>`),
	shared.NotifyPriceSet: mustTemplate("Your commission has been priced: %s",
		`<p>{{.Artist.FullName}} has reviewed your request <b>{{.Title}}</b> and set the price to <b>{{.Price}}</b>.</p>
<p>You can accept and pay, or deny the commission.</p>`),
	shared.NotifyAccepted: mustTemplate("Commission accepted: %s",
		`<p>{{.Commissioner.FullName}} accepted your price of <b>{{.Price}}</b> for <b>{{.Title}}</b>. Payment is on its way.</p>`),
	shared.NotifyDenied: mustTemplate("Commission denied: %s",
		`<p>The commission <b>{{.Title}}</b> between {{.Artist.FullName}} and {{.Commissioner.FullName}} has been denied.</p>`),
	shared.NotifyPaid: mustTemplate("Payment confirmed: %s",
		`<p>Payment of <b>{{.Price}}</b> for <b>{{.Title}}</b> has been confirmed.</p>
<p>{{.Artist.FullName}} can now start working on the piece.</p>`),
	shared.NotifyCompleted: mustTemplate("Commission complete: %s",
		`<p>{{.Artist.FullName}} has marked <b>{{.Title}}</b> as complete. Enjoy your artwork!</p>`),
}

func mustTemplate(subject, content string) commissionTemplate {
	t := template.Must(template.New("layout").Parse(layout))
	template.Must(t.New("content").Parse(content))
	return commissionTemplate{subject: subject, body: t}
}

// RenderCommissionEmail returns subject and HTML body for one recipient.
func RenderCommissionEmail(p shared.CommissionNotificationPayload, recipient shared.UserBasicInfo, publicURL string) (string, string, error) {
	tpl, ok := commissionTemplates[p.Kind]
	if !ok {
		return "", "", fmt.Errorf("no email template for notification kind %q", p.Kind)
	}

	data := templateData{
		Recipient:    recipient,
		Artist:       p.Artist,
		Commissioner: p.Commissioner,
		CommissionID: p.CommissionID,
		Title:        p.Title,
		Price:        p.Price,
		Link:         fmt.Sprintf("%s/commissions/%s", publicURL, p.CommissionID),
	}

	var buf bytes.Buffer
	if err := tpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s email: %w", p.Kind, err)
	}
	return fmt.Sprintf(tpl.subject, p.Title), buf.String(), nil
}
