package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func validMessage() *Message {
	return &Message{
		From:    "DNF <contato@dnf.com.br>",
		To:      "ana@x.com",
		Subject: "Seu Guia",
		HTML:    "<p>Olá, Ana!</p>",
		Attachments: []Attachment{
			{Filename: "guia.pdf", Content: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))},
		},
	}
}

func TestMessageValidate(t *testing.T) {
	require.NoError(t, validMessage().Validate())

	var nilMsg *Message
	assert.ErrorIs(t, nilMsg.Validate(), ErrInvalidMessage)

	m := validMessage()
	m.To = " "
	assert.ErrorIs(t, m.Validate(), ErrInvalidMessage)

	m = validMessage()
	m.From = ""
	assert.ErrorIs(t, m.Validate(), ErrInvalidMessage)

	m = validMessage()
	m.Attachments[0].Filename = ""
	assert.ErrorIs(t, m.Validate(), ErrInvalidMessage)
}

func TestAttachmentDecode(t *testing.T) {
	b, err := validMessage().Attachments[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), b)

	_, err = Attachment{Filename: "x.pdf", Content: "***"}.Decode()
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestToResendRequest(t *testing.T) {
	req, err := toResendRequest(validMessage())
	require.NoError(t, err)

	assert.Equal(t, "DNF <contato@dnf.com.br>", req.From)
	assert.Equal(t, []string{"ana@x.com"}, req.To)
	assert.Equal(t, "Seu Guia", req.Subject)
	assert.Equal(t, "<p>Olá, Ana!</p>", req.Html)
	require.Len(t, req.Attachments, 1)
	assert.Equal(t, "guia.pdf", req.Attachments[0].Filename)
	assert.Equal(t, []byte("%PDF-1.4"), req.Attachments[0].Content)
}

func TestToResendRequest_BadAttachment(t *testing.T) {
	m := validMessage()
	m.Attachments[0].Content = "not base64!"
	_, err := toResendRequest(m)
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestToMailMsg(t *testing.T) {
	m, err := toMailMsg(validMessage())
	require.NoError(t, err)
	assert.Len(t, m.GetAttachments(), 1)

	bad := validMessage()
	bad.To = "not an address <<"
	_, err = toMailMsg(bad)
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestNew(t *testing.T) {
	s, err := New(Options{Provider: "log"}, discard())
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	s, err = New(Options{Provider: "Resend", ResendAPIKey: "re_test"}, discard())
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	s, err = New(Options{Provider: "smtp", SMTPHost: "smtp.example.com"}, discard())
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)
	assert.Equal(t, 587, s.(*SMTPSender).cfg.Port)

	_, err = New(Options{Provider: "pigeon"}, discard())
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), validMessage()))
	assert.Contains(t, buf.String(), "ana@x.com")
	assert.Contains(t, buf.String(), "guia.pdf")

	assert.ErrorIs(t, s.Send(context.Background(), &Message{}), ErrInvalidMessage)
}
