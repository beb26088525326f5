package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/donate-action/donate"

	"github.com/urfave/cli/v2"
)

func qrCommand() *cli.Command {
	return &cli.Command{
		Name:  "qr",
		Usage: "Write a QR code PNG for a deployed donate action",
		Description: `Encodes solana-action:<url> so a phone wallet can open the action directly.

Example:
  donate qr --url https://donate.example.com/api/donate --out donate.png`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Absolute URL of the action (e.g. https://host/api/donate?amount=1)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file, - for stdout",
				Value: "donate-qr.png",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "Image width and height in pixels",
				Value: donate.DefaultQRSize,
			},
		},
		Action: func(c *cli.Context) error {
			png, err := donate.GenerateQRCode(donate.BlinkURL(c.String("url")), c.Int("size"))
			if err != nil {
				return fmt.Errorf("failed to generate QR code: %w", err)
			}

			out := c.String("out")
			if out == "-" {
				_, err = c.App.Writer.Write(png)
				return err
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(c.App.ErrWriter, "wrote %s\n", out)
			return nil
		},
	}
}
