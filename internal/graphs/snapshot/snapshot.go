// Package snapshot renders local HTML pages to PNG with headless Chrome.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

type Config struct {
	Width   int64
	Height  int64
	Timeout time.Duration
	// Settle is how long to wait after load for the page's scripts to draw.
	Settle time.Duration
}

// Chrome captures full-page screenshots. It needs a Chrome or Chromium binary on
// the PATH.
type Chrome struct {
	cfg Config
}

func NewChrome(cfg Config) *Chrome {
	if cfg.Width <= 0 {
		cfg.Width = 1600
	}
	if cfg.Height <= 0 {
		cfg.Height = 1200
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Chrome{cfg: cfg}
}

// FileURL returns the file:// URL chrome is pointed at for path.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func (c *Chrome) Capture(ctx context.Context, htmlPath, imagePath string) error {
	url, err := FileURL(htmlPath)
	if err != nil {
		return err
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer timeoutCancel()

	chromeCtx, cancel := chromedp.NewContext(timeoutCtx)
	defer cancel()

	var png []byte
	err = chromedp.Run(chromeCtx,
		chromedp.EmulateViewport(c.cfg.Width, c.cfg.Height),
		emulation.SetDefaultBackgroundColorOverride().WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}),
		chromedp.Navigate(url),
		chromedp.Sleep(c.cfg.Settle),
		// Quality 100 gives a lossless PNG.
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", htmlPath, err)
	}

	return os.WriteFile(imagePath, png, 0o644)
}
