package lead

import (
	"bytes"
	"html/template"
)

const (
	emailSubject   = "📥 Seu Guia NR-1 - DNF Ocupacional"
	attachmentName = "Guia-NR1-DNF-Ocupacional.pdf"
)

var emailBody = template.Must(template.New("lead").Parse(`
<p>Olá, {{.Name}}!</p>
<p>Segue em anexo o <strong>Guia NR-1</strong> que você solicitou.</p>
<p>Se precisar de ajuda para adequação e implementação, é só responder este e-mail.</p>
<br/>
<p><strong>DNF Ocupacional</strong></p>
`))

func renderEmail(name string) (string, error) {
	var buf bytes.Buffer
	if err := emailBody.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
