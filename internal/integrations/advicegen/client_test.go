package advicegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}
func (nopLogger) Error(format string, v ...interface{}) {}

func adviceResponse(text string) generateContentResponse {
	return generateContentResponse{
		Candidates: []candidate{
			{Content: content{Parts: []part{{Text: text}}}},
		},
	}
}

func TestClient_GenerateAdvice_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(adviceResponse("1. 相談内容の要約..."))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 5*time.Second, nopLogger{})

	text, err := c.GenerateAdvice(context.Background(), "宿題について相談したい")
	require.NoError(t, err)
	assert.Equal(t, "1. 相談内容の要約...", text)

	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	// Текст обращения встраивается в промпт
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.True(t, strings.Contains(gotBody.Contents[0].Parts[0].Text, "宿題について相談したい"))
}

func TestClient_GenerateAdvice_EmptyMemo(t *testing.T) {
	c := NewClient("http://unused", "gemini-2.0-flash", "test-key", time.Second, nopLogger{})

	_, err := c.GenerateAdvice(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMemo)
}

func TestClient_GenerateAdvice_NotConfigured(t *testing.T) {
	c := NewClient("http://unused", "gemini-2.0-flash", "", time.Second, nopLogger{})

	_, err := c.GenerateAdvice(context.Background(), "相談内容")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_GenerateAdvice_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", time.Second, nopLogger{})

	_, err := c.GenerateAdvice(context.Background(), "相談内容")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_GenerateAdvice_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", time.Second, nopLogger{})

	_, err := c.GenerateAdvice(context.Background(), "相談内容")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetAdviceWithFallback_NeverFails(t *testing.T) {
	t.Run("generator unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", time.Second, nopLogger{})
		assert.Equal(t, FallbackUnavailable, c.GetAdviceWithFallback(context.Background(), "相談内容"))
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", 50*time.Millisecond, nopLogger{})
		assert.Equal(t, FallbackUnavailable, c.GetAdviceWithFallback(context.Background(), "相談内容"))
	})

	t.Run("empty memo", func(t *testing.T) {
		c := NewClient("http://unused", "gemini-2.0-flash", "test-key", time.Second, nopLogger{})
		assert.Equal(t, FallbackUnavailable, c.GetAdviceWithFallback(context.Background(), ""))
	})

	t.Run("empty generated text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(adviceResponse(""))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "gemini-2.0-flash", "test-key", time.Second, nopLogger{})
		assert.Equal(t, FallbackEmpty, c.GetAdviceWithFallback(context.Background(), "相談内容"))
	})
}
