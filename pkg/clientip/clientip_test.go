package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/clientip"
)

func TestResolver_IP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trusted    []string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr without trusted headers",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "first trusted header wins",
			trusted:    []string{"cf-connecting-ip", "X-Forwarded-For"},
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.195", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "192.0.2.1:1234",
			want:       "203.0.113.195",
		},
		{
			name:       "first valid entry of forwarded list",
			trusted:    []string{"X-Forwarded-For"},
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.178, 10.0.0.1"},
			remoteAddr: "192.0.2.1:1234",
			want:       "198.51.100.178",
		},
		{
			name:       "invalid header falls back",
			trusted:    []string{"X-Real-IP"},
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "ipv6 normalised",
			remoteAddr: "[2001:0db8:0000:0000:0000:0000:0000:0001]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "unparseable remote addr returned as is",
			remoteAddr: "pipe",
			want:       "pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientip.NewResolver(tt.trusted...).IP(req))
		})
	}
}
