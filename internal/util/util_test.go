package util

import (
	"testing"

	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDetectDevice(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", model.DeviceMobile},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 8)", model.DeviceMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", model.DeviceTablet},
		{"android tablet", "Mozilla/5.0 (Linux; Android 14; Tablet)", model.DeviceTablet},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", model.DeviceDesktop},
		{"curl", "curl/8.0", model.DeviceDesktop},
		{"empty", "", model.DeviceDesktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDevice(tt.userAgent))
		})
	}
}

func TestNormalizeReferrer(t *testing.T) {
	tests := []struct {
		name     string
		referrer string
		want     string
	}{
		{"plain host", "https://instagram.com/somebody", "instagram.com"},
		{"www stripped", "https://www.instagram.com/somebody", "instagram.com"},
		{"upper case", "HTTPS://WWW.Twitter.COM/x", "twitter.com"},
		{"no scheme", "instagram.com/somebody", ""},
		{"garbage", "::::", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeReferrer(tt.referrer))
		})
	}
}

func BenchmarkDetectDevice(b *testing.B) {
	ua := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
	for i := 0; i < b.N; i++ {
		DetectDevice(ua)
	}
}
