package sink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rag/internal/config"
)

func TestForward_PostsFormEncodedRecord(t *testing.T) {
	var gotForm map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&config.SinkConfig{URL: server.URL, TimeoutSeconds: 5})
	err := client.Forward(context.Background(), map[string]string{
		"Name":   "Jane Doe",
		"Skills": "Python, SQL",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe"}, gotForm["Name"])
	assert.Equal(t, []string{"Python, SQL"}, gotForm["Skills"])
}

func TestForward_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&config.SinkConfig{URL: server.URL, TimeoutSeconds: 5})
	err := client.Forward(context.Background(), map[string]string{"Name": "Jane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestForward_UnreachableSink(t *testing.T) {
	client := NewClient(&config.SinkConfig{URL: "http://127.0.0.1:1", TimeoutSeconds: 1})
	err := client.Forward(context.Background(), map[string]string{"Name": "Jane"})
	assert.Error(t, err)
}
