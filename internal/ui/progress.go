package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ByteBar renders transfer progress for a single download
type ByteBar struct {
	bar *progressbar.ProgressBar
}

// NewByteBar creates a byte-level progress bar; size may be -1 when the
// server does not report a Content-Length.
func NewByteBar(size int64, label string) *ByteBar {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(color.CyanString("Downloading: ")+label),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ByteBar{bar: bar}
}

// Write advances the bar; ByteBar satisfies io.Writer so it can sit in a
// MultiWriter alongside the destination file.
func (b *ByteBar) Write(p []byte) (int, error) {
	return b.bar.Write(p)
}

// Finish completes the bar
func (b *ByteBar) Finish() {
	b.bar.Finish()
}
