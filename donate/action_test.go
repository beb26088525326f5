package donate

import (
	"bytes"
	"crypto/tls"
	"image/png"
	"net/http/httptest"
	"testing"

	"github.com/AlexZinkM/donate-action/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionDescriptor(t *testing.T) {
	href := "https://donate.example.com/api/donate"
	got := NewActionDescriptor(href, MetaFor("Abyscuit", "/images/icon.png"))

	assert.Equal(t, model.ActionTypeAction, got.Type)
	assert.Equal(t, "/images/icon.png", got.Icon)
	assert.Equal(t, "Donate to Abyscuit", got.Title)
	assert.Equal(t, "Support Abyscuit by donating SOL.", got.Description)
	assert.Equal(t, "Donate", got.Label)

	require.NotNil(t, got.Links)
	actions := got.Links.Actions
	require.Len(t, actions, 5)

	wantLabels := []string{"Donate 0.1 SOL", "Donate 1 SOL", "Donate 2 SOL", "Donate 5 SOL", "Donate SOL"}
	wantHrefs := []string{
		href + "?amount=0.1",
		href + "?amount=1",
		href + "?amount=2",
		href + "?amount=5",
		href + "?amount={amount}",
	}
	for i, a := range actions {
		assert.Equal(t, wantLabels[i], a.Label)
		assert.Equal(t, wantHrefs[i], a.Href)
		assert.Equal(t, model.LinkedActionTypeTransaction, a.Type)
	}

	for _, a := range actions[:4] {
		assert.Empty(t, a.Parameters)
	}
	require.Len(t, actions[4].Parameters, 1)
	param := actions[4].Parameters[0]
	assert.Equal(t, "amount", param.Name)
	assert.Equal(t, "Enter the amount you want to donate", param.Label)
	assert.True(t, param.Required)
}

func TestRequestHref(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://localhost:8080/api/donate?ignored=1", nil)
		assert.Equal(t, "http://localhost:8080/api/donate", RequestHref(r, "", ""))
	})

	t.Run("tls", func(t *testing.T) {
		r := httptest.NewRequest("GET", "https://donate.example.com/api/donate", nil)
		r.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://donate.example.com/api/donate", RequestHref(r, "", ""))
	})

	t.Run("forwarded proto", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://internal:8080/api/donate", nil)
		r.Header.Set("X-Forwarded-Proto", "https, http")
		assert.Equal(t, "https://internal:8080/api/donate", RequestHref(r, "", ""))
	})

	t.Run("explicit path", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://localhost:8080/api/donate/qr", nil)
		assert.Equal(t, "http://localhost:8080/api/donate", RequestHref(r, "", "/api/donate"))
	})

	t.Run("configured base url", func(t *testing.T) {
		r := httptest.NewRequest("GET", "http://internal:8080/api/donate", nil)
		assert.Equal(t, "https://donate.example.com/api/donate", RequestHref(r, "https://donate.example.com/", ""))
	})
}

func TestActionRules(t *testing.T) {
	rules := ActionRules("/api/donate")
	require.Len(t, rules.Rules, 2)
	assert.Equal(t, model.ActionRule{PathPattern: "/donate", APIPath: "/api/donate"}, rules.Rules[0])
	assert.Equal(t, model.ActionRule{PathPattern: "/api/donate", APIPath: "/api/donate"}, rules.Rules[1])
}

func TestBlinkURL(t *testing.T) {
	assert.Equal(t, "solana-action:https://donate.example.com/api/donate",
		BlinkURL("https://donate.example.com/api/donate"))
	assert.Equal(t, "solana-action:https%3A%2F%2Fdonate.example.com%2Fapi%2Fdonate%3Famount%3D1",
		BlinkURL("https://donate.example.com/api/donate?amount=1"))
}

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode(BlinkURL("https://donate.example.com/api/donate"), DefaultQRSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultQRSize, img.Bounds().Dx())
}
