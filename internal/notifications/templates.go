package notifications

import (
	"bytes"
	"fmt"
	"html/template"
)

// subjects maps each template to its email subject line. Subjects with
// variables are rendered with the same context as the body.
var subjects = map[Template]string{
	TemplateWelcome:                 "Welcome to the rescue network",
	TemplateAwgApplied:              "New organization application: {{.AwgName}}",
	TemplateAwgPublished:            "{{.AwgName}} is now live",
	TemplateCommentReply:            "New activity on {{.AnimalName}}",
	TemplateApplicationReceived:     "New foster application for {{.AnimalName}}",
	TemplateApplicationAccepted:     "Your foster application for {{.AnimalName}} was accepted",
	TemplateApplicationRejected:     "An update on your foster application for {{.AnimalName}}",
	TemplateFostererProfileComplete: "New completed fosterer profile: {{.FostererName}}",
	TemplateSavedSearchDigest:       "{{.NewCount}} new {{.AnimalTypePlural}} match your saved search",
}

var bodies = map[Template]string{
	TemplateWelcome: `<p>Hi {{.Name}},</p>
<p>Your account is ready. Browse adoptable animals, shortlist the ones you like,
and complete your fosterer profile to start applying.</p>`,

	TemplateAwgApplied: `<p>{{.AwgName}} has applied to join the platform.</p>
<p>Review the application in the management console.</p>`,

	TemplateAwgPublished: `<p>Good news: {{.AwgName}} has been approved and its
listings are now publicly visible.</p>`,

	TemplateCommentReply: `<p>Hi {{.Name}},</p>
<p>{{.AuthorName}} posted in a conversation you took part in on
<a href="{{.AnimalURL}}">{{.AnimalName}}</a>.</p>`,

	TemplateApplicationReceived: `<p>{{.FostererName}} applied to foster
<a href="{{.AnimalURL}}">{{.AnimalName}}</a>.</p>
<p>Review the application in your organization console.</p>`,

	TemplateApplicationAccepted: `<p>Hi {{.FostererName}},</p>
<p>{{.AwgName}} accepted your application to foster {{.AnimalName}}.
They will be in touch shortly to arrange the details.</p>`,

	TemplateApplicationRejected: `<p>Hi {{.FostererName}},</p>
<p>Unfortunately {{.AwgName}} was not able to accept your application to foster
{{.AnimalName}}.</p>
<p>Reason: {{.Reason}}{{if .ReasonDetail}} &mdash; {{.ReasonDetail}}{{end}}</p>
<p>This does not prevent you from applying for other animals.</p>`,

	TemplateFostererProfileComplete: `<p>{{.FostererName}} ({{.FostererEmail}})
completed their fosterer profile and can now submit applications.</p>`,

	TemplateSavedSearchDigest: `<p>Hi {{.Name}},</p>
<p>{{.NewCount}} new {{.AnimalTypePlural}} matching your saved search
&ldquo;{{.SearchName}}&rdquo; {{if eq .NewCount 1}}was{{else}}were{{end}}
listed since we last checked:</p>
<ul>
{{range .Animals}}<li><a href="{{.URL}}">{{.Name}}</a> &mdash; {{.Breeds}}</li>
{{end}}</ul>`,
}

// Render produces the subject and HTML body for a template.
func Render(t Template, ctx map[string]interface{}) (string, string, error) {
	subjectSrc, ok := subjects[t]
	if !ok {
		return "", "", fmt.Errorf("unknown notification template %q", t)
	}
	subject, err := render(string(t)+"_subject", subjectSrc, ctx)
	if err != nil {
		return "", "", err
	}
	body, err := render(string(t)+"_body", bodies[t], ctx)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func render(name, src string, ctx map[string]interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}
