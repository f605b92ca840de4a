package programlist_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	programlist "github.com/goliatone/go-programlist"
	"github.com/goliatone/go-programlist/pkg/catalog"
	"github.com/goliatone/go-programlist/pkg/list"
)

const samplePayload = `{
	"count": 2,
	"next": null,
	"previous": null,
	"results": [
		{"id": "11", "name": "Intro to Data", "status": "active"},
		{"id": "12", "name": "Advanced Data", "status": "active"}
	]
}`

func sampleServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != catalog.DefaultEndpoint {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPrograms(t *testing.T) {
	srv := sampleServer(t)

	collection, err := programlist.FetchPrograms(context.Background(), srv.URL+catalog.DefaultEndpoint)
	if err != nil {
		t.Fatalf("fetch programs: %v", err)
	}
	if collection.Len() != 2 {
		t.Fatalf("expected 2 programs, got %d", collection.Len())
	}
	if got := collection.IDs(); got[0] != "11" || got[1] != "12" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestFetchHTML(t *testing.T) {
	srv := sampleServer(t)

	markup, err := programlist.FetchHTML(context.Background(), srv.URL+catalog.DefaultEndpoint)
	if err != nil {
		t.Fatalf("fetch html: %v", err)
	}
	body := string(markup)
	intro := strings.Index(body, "Intro to Data")
	advanced := strings.Index(body, "Advanced Data")
	if intro == -1 || advanced == -1 || intro > advanced {
		t.Fatalf("expected Intro before Advanced in markup:\n%s", body)
	}
}

func TestNewModel_OptionOverrides(t *testing.T) {
	srv := sampleServer(t)

	model, err := programlist.NewModel(
		list.WithSource(catalog.SourceFromURL(srv.URL + catalog.DefaultEndpoint)),
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if err := model.GetList(context.Background()); err != nil {
		t.Fatalf("get list: %v", err)
	}
	if model.Count() != 2 {
		t.Fatalf("expected count 2, got %d", model.Count())
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	fsys := programlist.EmbeddedTemplates()
	if fsys == nil {
		t.Fatal("expected embedded templates")
	}
	if css := programlist.DefaultStylesheet(); css == "" {
		t.Fatal("expected default stylesheet contents")
	}
}
