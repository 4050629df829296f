package util

import (
	"fmt"
	"net/url"
	"strings"
)

// youtubeHosts is the allow-list of hosts accepted as YouTube video URLs.
var youtubeHosts = []string{
	"youtube.com",
	"www.youtube.com",
	"youtu.be",
	"m.youtube.com",
}

// ValidateVideoURL checks that raw is an http(s) URL on a supported YouTube
// host. It returns the parsed URL or an error with a clear message.
func ValidateVideoURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in URL %q (only http/https)", u.Scheme, raw)
	}
	host := strings.ToLower(u.Host)
	for _, h := range youtubeHosts {
		if strings.Contains(host, h) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("unsupported URL %q: only YouTube is supported (youtube.com, youtu.be)", raw)
}
