package useragent_test

import (
	"testing"

	"storefront/internal/useragent"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		ua   string
		want useragent.Info
	}{
		{
			name: "chrome on windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
			want: useragent.Info{Device: "Desktop", Browser: "Chrome", OS: "Windows"},
		},
		{
			name: "safari on iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			want: useragent.Info{Device: "Mobile", Browser: "Safari", OS: "iOS"},
		},
		{
			name: "edge on windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0",
			want: useragent.Info{Device: "Desktop", Browser: "Edge", OS: "Windows"},
		},
		{
			name: "firefox on linux",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
			want: useragent.Info{Device: "Desktop", Browser: "Firefox", OS: "Linux"},
		},
		{
			name: "chrome on android phone",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Mobile Safari/537.36",
			want: useragent.Info{Device: "Mobile", Browser: "Chrome", OS: "Android"},
		},
		{
			name: "safari on ipad",
			ua:   "Mozilla/5.0 (iPad; CPU OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			want: useragent.Info{Device: "Tablet", Browser: "Safari", OS: "iOS"},
		},
		{
			name: "empty header",
			ua:   "",
			want: useragent.Info{Device: "Unknown", Browser: "Unknown", OS: "Unknown"},
		},
		{
			name: "gibberish",
			ua:   "curl/8.5.0",
			want: useragent.Info{Device: "Desktop", Browser: "Unknown", OS: "Unknown"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, useragent.Parse(tc.ua))
		})
	}
}
