package httpx

import "net/url"

func pathOf(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if parsed.Path == "" {
		return "/", true
	}
	return parsed.Path, true
}
