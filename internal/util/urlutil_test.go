package util

import "testing"

func TestValidateVideoURL(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"standard watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"bare host", "https://youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", false},
		{"mobile host", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"plain http", "http://www.youtube.com/watch?v=abc", false},
		{"other site", "https://vimeo.com/12345", true},
		{"ftp scheme", "ftp://youtube.com/watch?v=abc", true},
		{"no scheme", "youtube.com/watch?v=abc", true},
		{"empty", "", true},
		{"garbage", "not a url at all", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := ValidateVideoURL(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ValidateVideoURL(%q) = %v, want error", tc.raw, u)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateVideoURL(%q) error: %v", tc.raw, err)
			}
			if u == nil || u.Host == "" {
				t.Fatalf("ValidateVideoURL(%q) returned empty URL", tc.raw)
			}
		})
	}
}
