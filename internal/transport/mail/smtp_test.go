package mail

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_Send(t *testing.T) {
	sender, err := NewSMTPSender("smtp.example.com:587", "noreply@example.com", "user", "pass")
	require.NoError(t, err)
	sender.now = func() time.Time { return time.Date(2024, 12, 23, 8, 30, 0, 0, time.UTC) }

	var gotAddr string
	var gotTo []string
	var gotMsg string
	sender.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		assert.NotNil(t, a)
		assert.Equal(t, "noreply@example.com", from)
		return nil
	}

	require.NoError(t, sender.Send(t.Context(), "user@example.com", "Code", "Your code: 123456"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Code\r\n")
	assert.Contains(t, gotMsg, "\r\n\r\nYour code: 123456")
}

func TestSMTPSender_Errors(t *testing.T) {
	_, err := NewSMTPSender("no-port", "noreply@example.com", "", "")
	require.Error(t, err)

	sender, err := NewSMTPSender("localhost:25", "noreply@example.com", "", "")
	require.NoError(t, err)
	sender.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	require.Error(t, sender.Send(t.Context(), "user@example.com", "Code", "body"))
	require.Error(t, sender.Send(t.Context(), "user@example.com\r\nBcc: x@example.com", "Code", "body"))
}
