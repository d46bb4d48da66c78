package contact

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/inkpost/inkpost/internal/app/system/htmlsanitize"
)

// render executes one of the fixed email templates. The templates take no
// user-controlled structure, so a failure here is a programming error; the
// panic surfaces through the recovery middleware.
func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("contact: rendering %s email template: %v", t.Name(), err))
	}
	return buf.String()
}

// notProvided is shown in the admin notification when the optional phone
// field is absent.
const notProvided = "not provided"

// submissionData carries one submission into the email templates.
type submissionData struct {
	AppName   string
	Name      string
	Email     string
	Phone     string
	Message   string
	Reference string
}

var userHTMLTmpl = template.Must(template.New("user").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thanks for getting in touch, {{.Name}}!</h2>
  <p>We received your message and will get back to you as soon as we can.</p>
  <p>A copy of your message:</p>
  <blockquote style="border-left: 3px solid #ccc; padding-left: 12px; color: #555;">{{.Message}}</blockquote>
  <p>&mdash; The {{.AppName}} team</p>
</body>
</html>`))

// userConfirmationEmail renders the confirmation sent to the submitter.
func userConfirmationEmail(data submissionData) (textBody, htmlBody string) {
	textBody = "Thanks for getting in touch, " + data.Name + "!\n\n" +
		"We received your message and will get back to you as soon as we can.\n\n" +
		"A copy of your message:\n\n" +
		data.Message + "\n\n" +
		"- The " + data.AppName + " team"

	htmlBody = render(userHTMLTmpl, struct {
		AppName string
		Name    string
		Message template.HTML
	}{
		AppName: data.AppName,
		Name:    htmlsanitize.Strip(data.Name),
		Message: htmlsanitize.MultilineHTML(data.Message),
	})

	return textBody, htmlBody
}

var adminHTMLTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>New contact form submission</h2>
  <table cellpadding="6">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
    <tr><td><strong>Reference</strong></td><td>{{.Reference}}</td></tr>
  </table>
  <h3>Message</h3>
  <p>{{.Message}}</p>
</body>
</html>`))

// adminNotificationEmail renders the notification sent to the admin address.
func adminNotificationEmail(data submissionData) (textBody, htmlBody string) {
	phone := data.Phone
	if phone == "" {
		phone = notProvided
	}

	textBody = "New contact form submission\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + phone + "\n" +
		"Reference: " + data.Reference + "\n\n" +
		"Message:\n\n" +
		data.Message

	htmlBody = render(adminHTMLTmpl, struct {
		Name      string
		Email     string
		Phone     string
		Reference string
		Message   template.HTML
	}{
		Name:      htmlsanitize.Strip(data.Name),
		Email:     htmlsanitize.Strip(data.Email),
		Phone:     htmlsanitize.Strip(phone),
		Reference: data.Reference,
		Message:   htmlsanitize.MultilineHTML(data.Message),
	})

	return textBody, htmlBody
}
