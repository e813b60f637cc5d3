// Package useragent classifies a User-Agent header into coarse device,
// browser and OS buckets for visit analytics. It intentionally stays at
// the "good enough for a dashboard" level rather than full UA parsing.
package useragent

import "strings"

// Info is the classification of a single User-Agent string.
type Info struct {
	Device  string
	Browser string
	OS      string
}

const unknown = "Unknown"

// Parse classifies the given User-Agent header value.
func Parse(ua string) Info {
	lower := strings.ToLower(ua)
	return Info{
		Device:  device(lower),
		Browser: browser(lower),
		OS:      operatingSystem(lower),
	}
}

func device(ua string) string {
	switch {
	case ua == "":
		return unknown
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "Tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "iphone") || strings.Contains(ua, "android"):
		return "Mobile"
	default:
		return "Desktop"
	}
}

// browser checks are ordered: Chrome's UA contains "safari", Edge's
// contains "chrome", and Opera's contains both.
func browser(ua string) string {
	switch {
	case ua == "":
		return unknown
	case strings.Contains(ua, "edg/") || strings.Contains(ua, "edge"):
		return "Edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		return "Opera"
	case strings.Contains(ua, "firefox"):
		return "Firefox"
	case strings.Contains(ua, "chrome") || strings.Contains(ua, "crios"):
		return "Chrome"
	case strings.Contains(ua, "safari"):
		return "Safari"
	case strings.Contains(ua, "msie") || strings.Contains(ua, "trident"):
		return "Internet Explorer"
	default:
		return unknown
	}
}

func operatingSystem(ua string) string {
	switch {
	case ua == "":
		return unknown
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ios"):
		return "iOS"
	case strings.Contains(ua, "android"):
		return "Android"
	case strings.Contains(ua, "windows"):
		return "Windows"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		return "macOS"
	case strings.Contains(ua, "linux"):
		return "Linux"
	default:
		return unknown
	}
}
