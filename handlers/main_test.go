package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"volunteerhub/config"
	"volunteerhub/handlers"
	"volunteerhub/middleware"
	"volunteerhub/models"
	"volunteerhub/routes"
	"volunteerhub/store"
)

const testSecret = "test-secret"

// memStore is an in-memory Store mirroring the mongo implementation's
// semantics closely enough for handler tests: insertion-ordered finds,
// case-insensitive title search, and an unclamped request counter.
type memStore struct {
	mu       sync.Mutex
	posts    []*models.Post
	requests []*models.Request
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) InsertPost(_ context.Context, post *models.Post) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post.ID = primitive.NewObjectID()
	cp := *post
	m.posts = append(m.posts, &cp)
	return post.ID, nil
}

func (m *memStore) ListPosts(_ context.Context, opts store.ListOpts) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	search := strings.ToLower(opts.Search)
	var matched []models.Post
	for _, p := range m.posts {
		if strings.Contains(strings.ToLower(p.Title), search) {
			matched = append(matched, *p)
		}
	}

	skip := opts.Page * opts.Size
	if skip >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[skip:]
	if opts.Size > 0 && int64(len(matched)) > opts.Size {
		matched = matched[:opts.Size]
	}
	return matched, nil
}

func (m *memStore) AllPosts(_ context.Context) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memStore) UpcomingPosts(_ context.Context, limit int64) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetPost(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == id {
			return *p, nil
		}
	}
	return models.Post{}, store.ErrNotFound
}

func (m *memStore) PostsByOrganizer(_ context.Context, email string) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Post
	for _, p := range m.posts {
		if p.Organizer.Email == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) UpsertPost(_ context.Context, id primitive.ObjectID, post *models.Post) (store.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.posts {
		if existing.ID != id {
			continue
		}
		existing.Title = post.Title
		existing.Deadline = post.Deadline
		existing.Organizer = post.Organizer
		if post.Thumbnail != "" {
			existing.Thumbnail = post.Thumbnail
		}
		if post.Description != "" {
			existing.Description = post.Description
		}
		if post.Category != "" {
			existing.Category = post.Category
		}
		if post.Location != "" {
			existing.Location = post.Location
		}
		if post.VolunteersNeeded != 0 {
			existing.VolunteersNeeded = post.VolunteersNeeded
		}
		return store.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	cp := *post
	cp.ID = id
	m.posts = append(m.posts, &cp)
	return store.UpsertResult{UpsertedID: &id}, nil
}

func (m *memStore) DeletePost(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) AdjustRequestCount(_ context.Context, postID primitive.ObjectID, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == postID {
			p.RequestCount += delta
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) FindRequest(_ context.Context, email, postID string) (models.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.requests {
		if r.Email == email && r.PostID == postID {
			return *r, nil
		}
	}
	return models.Request{}, store.ErrNotFound
}

func (m *memStore) InsertRequest(_ context.Context, req *models.Request) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = primitive.NewObjectID()
	cp := *req
	m.requests = append(m.requests, &cp)
	return req.ID, nil
}

func (m *memStore) RequestsByEmail(_ context.Context, email string) ([]models.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Request
	for _, r := range m.requests {
		if r.Email == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memStore) DeleteRequest(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.requests {
		if r.ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := newMemStore()
	auth := middleware.NewAuth(testSecret, false)
	h := handlers.New(st, auth)
	cfg := config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	return routes.SetupRouter(h, auth, cfg), st
}

func perform(t *testing.T, router *gin.Engine, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("json parse: %v (body: %s)", err, resp.Body.String())
	}
}

// sessionCookie obtains a session cookie for email through the token
// endpoint, the same way a browser would.
func sessionCookie(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()

	resp := perform(t, router, http.MethodPost, "/jwt", gin.H{"email": email})
	if resp.Code != http.StatusOK {
		t.Fatalf("token endpoint: expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	for _, c := range resp.Result().Cookies() {
		if c.Name == middleware.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}
