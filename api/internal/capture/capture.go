// Package capture renders a web page into a PNG screenshot via headless
// Chrome so URL-mode requests can reuse the image analysis path.
package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

type Config struct {
	ViewportWidth  int
	ViewportHeight int
	NavTimeout     time.Duration
	// SettleDelay gives dynamic content a moment to render after load.
	SettleDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		ViewportWidth:  1200,
		ViewportHeight: 800,
		NavTimeout:     30 * time.Second,
		SettleDelay:    2 * time.Second,
	}
}

type Capturer struct {
	cfg Config
	log *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Capturer {
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		def := DefaultConfig()
		cfg.ViewportWidth, cfg.ViewportHeight = def.ViewportWidth, def.ViewportHeight
	}
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = DefaultConfig().NavTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Capturer{cfg: cfg, log: log}
}

// NormalizeURL prepends https:// when the scheme is missing.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty url")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw, nil
}

// Screenshot navigates to rawURL and returns a full-page PNG. The browser is
// launched per call and always closed, including on timeout or cancellation.
func (c *Capturer) Screenshot(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	controlURL, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             c.cfg.ViewportWidth,
		Height:            c.cfg.ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	page = page.Context(ctx).Timeout(c.cfg.NavTimeout)
	if err := page.Navigate(target); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", target, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load %s: %w", target, err)
	}

	if c.cfg.SettleDelay > 0 {
		select {
		case <-time.After(c.cfg.SettleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot %s: %w", target, err)
	}

	c.log.Debug("captured screenshot",
		zap.String("url", target), zap.Int("bytes", len(shot)))
	return shot, nil
}
