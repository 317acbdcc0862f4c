package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"v1.2.0", "v1.1.9", true},
		{"1.2.0", "v1.2.0", false},
		{"v1.10.0", "v1.9.0", true},
		{"v2.0.0-rc.1", "v1.9.0", true},
		{"v2.0.0", "v2.0.0-rc.1", true},
		{"v1.0.0", "(devel)", false},
		{"garbage", "v1.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNewer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/mangeshraut712/alpha-quant-academy/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.3.0","html_url":"https://example.com/v1.3.0"}`))
	}))
	defer server.Close()

	c := NewChecker(WithBaseURL(server.URL))
	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.3.0", res.LatestVersion)
	assert.Equal(t, "https://example.com/v1.3.0", res.ReleaseURL)

	_, err = NewChecker(WithBaseURL(server.URL), WithRepo("someone", "else")).
		Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	assert.ErrorContains(t, err, "HTTP 404")
}
