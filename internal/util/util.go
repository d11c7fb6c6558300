package util

import (
	"net/url"
	"strings"

	"github.com/Totarae/LinkInBio/internal/model"
)

// DetectDevice грубо классифицирует устройство по User-Agent.
// Точность здесь не критична: поле используется только для
// агрегатов аналитики, неизвестные агенты считаем десктопом.
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return model.DeviceTablet
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return model.DeviceMobile
	default:
		return model.DeviceDesktop
	}
}

// NormalizeReferrer приводит referrer к виду "хост" без схемы и пути.
// Пустой или некорректный referrer возвращается пустой строкой.
func NormalizeReferrer(referrer string) string {
	if referrer == "" {
		return ""
	}
	u, err := url.Parse(referrer)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
