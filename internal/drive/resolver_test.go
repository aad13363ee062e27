package drive

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestResolver_ResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {
				"fileId": "abc",
				"title": "Q3 Report.pdf",
				"method": "html-scraping",
				"audio": {"isAudio": false, "proxyPath": null, "downloadUrl": null, "mimeType": null}
			}
		}`))
	}))
	defer server.Close()

	resolver := CreateResolver(server.URL, time.Second)
	metadata, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")

	require.NoError(t, err)
	require.NotNil(t, metadata.FileID)
	assert.Equal(t, "abc", *metadata.FileID)
	assert.Equal(t, "Q3 Report.pdf", metadata.Title)
	assert.Equal(t, "html-scraping", metadata.Method)
	assert.False(t, metadata.Audio.IsAudio)
}

func TestResolver_ResolveRemoteFailure(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "messageAndReason",
			body:            `{"success": false, "error": {"message": "file is private", "details": {"reason": "forbidden"}}}`,
			expectedMessage: "file is private (forbidden)",
		},
		{
			name:            "messageOnly",
			body:            `{"success": false, "error": {"message": "file is private"}}`,
			expectedMessage: "file is private",
		},
		{
			name:            "emptyErrorObject",
			body:            `{"success": false}`,
			expectedMessage: GenericResolveFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resolver := CreateResolver(server.URL, time.Second)
			_, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")

			var resolveErr *ResolveError
			require.True(t, errors.As(err, &resolveErr))
			assert.True(t, resolveErr.Remote)
			assert.Equal(t, tt.expectedMessage, resolveErr.Error())
		})
	}
}

func TestResolver_ResolveHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := CreateResolver(server.URL, time.Second)
	_, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")

	var resolveErr *ResolveError
	require.True(t, errors.As(err, &resolveErr))
	assert.False(t, resolveErr.Remote)
	assert.Equal(t, GenericResolveFailure, resolveErr.Error())
}

func TestResolver_ResolveMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	resolver := CreateResolver(server.URL, time.Second)
	_, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")

	var resolveErr *ResolveError
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, GenericResolveFailure, resolveErr.Error())
}

func TestResolver_ResolveTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	resolver := CreateResolver(server.URL, 50*time.Millisecond)

	started := time.Now()
	_, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")
	elapsed := time.Since(started)

	var resolveErr *ResolveError
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, GenericResolveFailure, resolveErr.Error())
	assert.Less(t, elapsed, time.Second)
}

func TestResolver_ResolveUnreachable(t *testing.T) {
	resolver := CreateResolver("http://127.0.0.1:1", time.Second)
	_, err := resolver.Resolve(context.Background(), "https://drive.example.com/file/abc")

	var resolveErr *ResolveError
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, GenericResolveFailure, resolveErr.Error())
}
