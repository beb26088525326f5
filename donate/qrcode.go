package donate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the PNG edge length in pixels.
const DefaultQRSize = 256

// BlinkURL returns the solana-action: URI wallets resolve into the action at href.
// href is percent-encoded only when it carries a query.
func BlinkURL(href string) string {
	if strings.Contains(href, "?") {
		return "solana-action:" + url.QueryEscape(href)
	}
	return "solana-action:" + href
}

// GenerateQRCode renders content as a PNG QR code.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return png, nil
}
