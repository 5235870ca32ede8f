package aur

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTarball(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foo-1.0-1.src.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("tarball contents"), 0644))
	return path
}

func TestUpload_Success(t *testing.T) {
	var gotCategory, gotToken, gotSubmit, gotFile string
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotCategory = r.FormValue("category")
		gotToken = r.FormValue("token")
		gotSubmit = r.FormValue("pkgsubmit")

		file, header, err := r.FormFile("pfile")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		_, err = io.ReadAll(file)
		require.NoError(t, err)

		http.Redirect(w, r, "/packages/foo/", http.StatusFound)
	})
	mux.HandleFunc("/packages/foo/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>foo 1.0-1</html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newServerClient(t, server)
	client.aursid = "session-token"

	err := client.Upload(context.Background(), writeTarball(t), "3")
	require.NoError(t, err)

	assert.Equal(t, "3", gotCategory)
	assert.Equal(t, "session-token", gotToken)
	assert.Equal(t, "1", gotSubmit)
	assert.Equal(t, "foo-1.0-1.src.tar.gz", gotFile)
}

func TestUpload_ServerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newServerClient(t, server)

	err := client.Upload(context.Background(), writeTarball(t), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestUpload_ErrorListExtracted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<ul class="errorlist"><li>Missing PKGBUILD in tarball.</li></ul>
</body></html>`))
	}))
	defer server.Close()

	client := newServerClient(t, server)

	err := client.Upload(context.Background(), writeTarball(t), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing PKGBUILD in tarball.")
}

func TestUpload_NoErrorBlockMeansRejectedSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>upload form</body></html>"))
	}))
	defer server.Close()

	client := newServerClient(t, server)

	err := client.Upload(context.Background(), writeTarball(t), "1")
	assert.ErrorIs(t, err, ErrCookieRejected)
}

func TestUpload_MissingFile(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := newServerClient(t, server)

	err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.tar.gz"), "1")
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestUpload_NotARegularFile(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := newServerClient(t, server)

	err := client.Upload(context.Background(), t.TempDir(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestExtractUploadError(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "pre-3.0 pkgoutput",
			html: `<p class="pkgoutput">You must create an account before you can upload packages.</p>`,
			want: "You must create an account before you can upload packages.",
		},
		{
			name: "errorlist",
			html: `<ul class="errorlist"><li>Invalid name.</li></ul>`,
			want: "Invalid name.",
		},
		{
			name: "multiline errorlist collapses whitespace",
			html: "<ul class=\"errorlist\">\n  <li>Invalid name.</li>\n  <li>Missing PKGBUILD.</li>\n</ul>",
			want: "Invalid name. Missing PKGBUILD.",
		},
		{
			name: "no error block",
			html: `<html><body><h2>Submit</h2></body></html>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUploadError([]byte(tt.html)))
		})
	}
}
