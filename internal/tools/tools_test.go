package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalDBTriggerPhrase(t *testing.T) {
	tool := MedicalDBTool{}

	out, err := tool.Execute(context.Background(), "Do VACCINES cause autism?")
	require.NoError(t, err)
	assert.Equal(t, medicalDBHit, out)

	out, err = tool.Execute(context.Background(), "does garlic cure colds")
	require.NoError(t, err)
	assert.Equal(t, medicalDBMiss, out)
}

func TestRegistryOrderAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register(MedicalDBTool{})
	reg.Register(&WebSearchTool{})
	reg.Register(MedicalDBTool{}) // duplicate ignored

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "medical_db", list[0].Name())
	assert.Equal(t, "web_search", list[1].Name())

	_, err := reg.Execute(context.Background(), "nope", "x")
	assert.ErrorContains(t, err, "unknown tool")
}

func TestWebSearchParsesSnippets(t *testing.T) {
	page := `<html><body>
		<div class="result">
			<a class="result__a" href="#">Title one</a>
			<a class="result__snippet" href="#">Bleach is <b>not</b> a cure.</a>
		</div>
		<div class="result">
			<a class="result__snippet" href="#">Health agencies warn against it.</a>
		</div>
	</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bleach cure", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	tool := &WebSearchTool{Endpoint: server.URL, Client: server.Client()}
	out, err := tool.Execute(context.Background(), "bleach cure")
	require.NoError(t, err)
	assert.Equal(t, "- Bleach is not a cure.\n- Health agencies warn against it.", out)
}

func TestWebSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>nothing here</p></body></html>"))
	}))
	defer server.Close()

	tool := &WebSearchTool{Endpoint: server.URL, Client: server.Client()}
	out, err := tool.Execute(context.Background(), "obscure query")
	require.NoError(t, err)
	assert.Equal(t, "No search results found.", out)
}

type fixedLibrary struct{ answer string }

func (f fixedLibrary) Query(ctx context.Context, q string, topK int) string { return f.answer }

func TestLibraryToolNeverErrors(t *testing.T) {
	tool := &LibraryTool{Library: fixedLibrary{answer: "Source: CDC\nContent: facts\n\n"}}
	out, err := tool.Execute(context.Background(), "vaccines")
	require.NoError(t, err)
	assert.Contains(t, out, "Source: CDC")
}
