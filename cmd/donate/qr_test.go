package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestQRCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "donate.png")
	app := &cli.App{
		Commands:  []*cli.Command{qrCommand()},
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
	}

	err := app.Run([]string{"donate", "qr", "--url", "https://donate.example.com/api/donate", "--out", out, "--size", "128"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCommand_RequiresURL(t *testing.T) {
	app := &cli.App{
		Commands:  []*cli.Command{qrCommand()},
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
	}
	assert.Error(t, app.Run([]string{"donate", "qr"}))
}
