package notifications

import (
	"bytes"
	"html/template"

	"agency-backend/internal/contact"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New project inquiry</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
  {{if .ProjectType}}<p><strong>Project type:</strong> {{.ProjectType}}</p>{{end}}
  <p><strong>Received:</strong> {{.CreatedAt.Format "2006-01-02 15:04 MST"}}</p>
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))

func buildContactNotificationHTML(msg contact.Message) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
