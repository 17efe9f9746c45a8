package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/gunlinux/gunlinux.ru/internal/auth"
	"github.com/gunlinux/gunlinux.ru/internal/blog"
	"github.com/gunlinux/gunlinux.ru/internal/db"
)

var (
	testDB   *pg.DB
	testEcho *echo.Echo
)

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	services := blog.NewFactory(testDB, logger)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	adapter := auth.NewAdapter(services.Users(), db.NewUserRepo(testDB), logger)

	handler := NewBlogHandler(services, adapter, tokens, []int{3}, logger)
	testEcho = RegisterRoutes(handler)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testEcho.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body: %s", err, rec.Body.String())
	}
	return out
}

func TestBlogHandlerPosts_Integration(t *testing.T) {
	t.Run("PublishedFeedOnly", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		summaries := decode[[]PostSummary](t, rec)
		if len(summaries) != 2 {
			t.Fatalf("expected 2 published posts, got %d", len(summaries))
		}

		for _, summary := range summaries {
			if summary.ID == 0 {
				t.Error("invalid post ID")
			}
			if summary.PublishedOn == nil {
				t.Errorf("post %q has no published timestamp", summary.Alias)
			}
			if summary.CategoryID != nil {
				t.Errorf("post %q in a category leaked into the feed", summary.Alias)
			}
		}

		if summaries[0].Alias != "why-vim" {
			t.Errorf("expected newest post first, got %q", summaries[0].Alias)
		}
	})

	t.Run("WithTagFilter", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts?tag_id=2")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		summaries := decode[[]PostSummary](t, rec)
		if len(summaries) != 2 {
			t.Fatalf("expected 2 posts for tag, got %d", len(summaries))
		}
	})

	t.Run("BadFilterValue", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts?tag_id=abc")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestBlogHandlerPostByAlias_Integration(t *testing.T) {
	t.Run("PublishedPost", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts/why-vim")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		post := decode[Post](t, rec)
		if post.Alias != "why-vim" {
			t.Fatalf("unexpected post %q", post.Alias)
		}
		if post.Content == "" {
			t.Error("expected raw markdown content")
		}
		if !strings.Contains(post.HTML, "<h2") {
			t.Errorf("markdown heading not rendered: %q", post.HTML)
		}
		if len(post.Tags) != 1 {
			t.Errorf("expected 1 tag, got %d", len(post.Tags))
		}
	})

	t.Run("PagePostIsVisible", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts/about")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		post := decode[Post](t, rec)
		if post.Category == nil || !post.Category.IsPage {
			t.Fatalf("expected page category to be loaded, got %+v", post.Category)
		}
	})

	t.Run("DraftIsHidden", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts/unfinished-draft")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 for draft, got %d", rec.Code)
		}
	})

	t.Run("MissingAlias", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts/no-such-post")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestBlogHandlerPages_Integration(t *testing.T) {
	rec := doGet(t, "/api/v1/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	pages := decode[[]PostSummary](t, rec)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Alias != "about" {
		t.Fatalf("unexpected page %q", pages[0].Alias)
	}
}

func TestBlogHandlerCategories_Integration(t *testing.T) {
	rec := doGet(t, "/api/v1/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	categories := decode[[]Category](t, rec)
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
}

func TestBlogHandlerTags_Integration(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		rec := doGet(t, "/api/v1/tags")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		tags := decode[[]Tag](t, rec)
		if len(tags) != 3 {
			t.Fatalf("expected 3 tags, got %d", len(tags))
		}
	})

	t.Run("PostsByTagAlias", func(t *testing.T) {
		rec := doGet(t, "/api/v1/tags/go/posts")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		posts := decode[[]PostSummary](t, rec)
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts for tag, got %d", len(posts))
		}
	})

	t.Run("MissingTagAlias", func(t *testing.T) {
		rec := doGet(t, "/api/v1/tags/no-such/posts")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("TagsOfPost", func(t *testing.T) {
		rec := doGet(t, "/api/v1/posts/rack-notes/tags")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		tags := decode[[]Tag](t, rec)
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %d", len(tags))
		}
	})
}

func TestBlogHandlerIcons_Integration(t *testing.T) {
	rec := doGet(t, "/api/v1/icons")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
	}

	icons := decode[[]Icon](t, rec)
	if len(icons) != 2 {
		t.Fatalf("expected 2 icons, got %d", len(icons))
	}
}

func TestBlogHandlerLogin_Integration(t *testing.T) {
	postLogin := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		testEcho.ServeHTTP(rec, req)
		return rec
	}

	t.Run("ValidCredentials", func(t *testing.T) {
		rec := postLogin(t, fmt.Sprintf(`{"name":"admin","password":%q}`, db.TestPassword))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		resp := decode[LoginResponse](t, rec)
		if resp.Token == "" {
			t.Fatal("expected session token")
		}
		if resp.Name != "admin" {
			t.Fatalf("unexpected user %q", resp.Name)
		}

		cookies := rec.Result().Cookies()
		var sessionSet bool
		for _, c := range cookies {
			if c.Name == "session" && c.Value == resp.Token {
				sessionSet = true
			}
		}
		if !sessionSet {
			t.Fatal("expected session cookie carrying the token")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := postLogin(t, `{"name":"admin","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		rec := postLogin(t, fmt.Sprintf(`{"name":"nobody","password":%q}`, db.TestPassword))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})
}

func TestBlogHandlerHealth_Integration(t *testing.T) {
	rec := doGet(t, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
