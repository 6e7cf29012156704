package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courselibrary-backend/internal/domains/author"
	"courselibrary-backend/internal/domains/author/service"
	"courselibrary-backend/internal/shared/pagination"
	"courselibrary-backend/internal/shared/sorting"
)

const hateoasMediaType = "application/vnd.marvin.hateoas+json"

// fakeAuthorRepo is an in-memory author.Repository for handler tests.
type fakeAuthorRepo struct {
	authors map[uuid.UUID]author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.authors[stored.ID] = stored
	return &stored, nil
}

func (f *fakeAuthorRepo) CreateMany(ctx context.Context, authors []*author.Author) ([]author.Author, error) {
	created := make([]author.Author, 0, len(authors))
	for _, a := range authors {
		one, err := f.Create(ctx, a)
		if err != nil {
			return nil, err
		}
		created = append(created, *one)
	}
	return created, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]author.Author, error) {
	out := make([]author.Author, 0, len(ids))
	for _, id := range ids {
		a, ok := f.authors[id]
		if !ok {
			return nil, author.ErrAuthorNotFound
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAuthorRepo) GetPage(_ context.Context, filter author.AuthorFilter, page pagination.PageRequest) (*pagination.PagedList[author.Author], error) {
	matched := []author.Author{}
	for _, a := range f.authors {
		if filter.MainCategory != "" && a.MainCategory != filter.MainCategory {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].FirstName < matched[j].FirstName
	})

	total := int64(len(matched))
	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return pagination.NewPagedList(matched[start:end], total, page.PageNumber, page.PageSize), nil
}

func (f *fakeAuthorRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func newTestRouter(repo author.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	reg := sorting.NewRegistry()
	author.RegisterMappings(reg)

	svc := service.NewAuthorService(repo)
	h := NewAuthorHandler(svc, reg)
	ch := NewAuthorCollectionHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/authors", h.List)
	api.POST("/authors", h.Create)
	api.OPTIONS("/authors", h.Options)
	api.GET("/authors/:authorId", h.Get)
	api.DELETE("/authors/:authorId", h.Delete)
	api.GET("/authorcollections/:ids", ch.Get)
	api.POST("/authorcollections", ch.Create)
	return r
}

func seedAuthor(t *testing.T, repo *fakeAuthorRepo, first, last, category string) author.Author {
	t.Helper()
	created, err := repo.Create(context.Background(), &author.Author{
		FirstName:    first,
		LastName:     last,
		DateOfBirth:  time.Date(1950, 3, 1, 0, 0, 0, 0, time.UTC),
		MainCategory: category,
	})
	require.NoError(t, err)
	return *created
}

func doRequest(r *gin.Engine, method, target, accept string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAuthors(t *testing.T) {
	repo := newFakeAuthorRepo()
	seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	seedAuthor(t, repo, "Grace", "Hopper", "Computing")
	seedAuthor(t, repo, "Jane", "Austen", "Writing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors?pageSize=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meta struct {
		TotalCount  int64 `json:"totalCount"`
		PageSize    int   `json:"pageSize"`
		CurrentPage int   `json:"currentPage"`
		TotalPages  int   `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get("X-Pagination")), &meta))
	assert.Equal(t, int64(3), meta.TotalCount)
	assert.Equal(t, 2, meta.PageSize)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 2, meta.TotalPages)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	// Plain variant: no links anywhere.
	_, hasLinks := body[0]["links"]
	assert.False(t, hasLinks)
}

func TestListAuthorsFiltersByMainCategory(t *testing.T) {
	repo := newFakeAuthorRepo()
	seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	seedAuthor(t, repo, "Jane", "Austen", "Writing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors?mainCategory=Writing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Jane Austen", body[0]["name"])
}

func TestListAuthorsHATEOASEnvelope(t *testing.T) {
	repo := newFakeAuthorRepo()
	for i := 0; i < 15; i++ {
		seedAuthor(t, repo, "Author", uuid.NewString()[:8], "Computing")
	}
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors?pageSize=10", hateoasMediaType, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Value []map[string]interface{} `json:"value"`
		Links []struct {
			Href   string `json:"href"`
			Rel    string `json:"rel"`
			Method string `json:"method"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Value, 10)

	// Page 1 of 2: self plus nextPage only.
	require.Len(t, body.Links, 2)
	assert.Equal(t, "self", body.Links[0].Rel)
	assert.Equal(t, "nextPage", body.Links[1].Rel)
	assert.Contains(t, body.Links[1].Href, "pageNumber=2")

	// Every item carries its own links.
	itemLinks, ok := body.Value[0]["links"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, itemLinks)
}

func TestListAuthorsInvalidOrderBy(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	w := doRequest(r, http.MethodGet, "/api/authors?orderBy=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAuthorsValidOrderBy(t *testing.T) {
	repo := newFakeAuthorRepo()
	seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors?orderBy=name+desc,age", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAuthorsUnknownFields(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	w := doRequest(r, http.MethodGet, "/api/authors?fields=name,bogus", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Contains(t, problem["detail"], "bogus")
}

func TestGetAuthorShaped(t *testing.T) {
	repo := newFakeAuthorRepo()
	a := seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors/"+a.ID.String()+"?fields=name", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"name": "Ada Lovelace"}, body)
}

func TestGetAuthorNotFound(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	w := doRequest(r, http.MethodGet, "/api/authors/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAuthorFullVariant(t *testing.T) {
	repo := newFakeAuthorRepo()
	a := seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/authors/"+a.ID.String(),
		"application/vnd.marvin.author.full+json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ada", body["firstName"])
	assert.Equal(t, "Lovelace", body["lastName"])
}

func TestCreateAuthorAndFollowSelfLink(t *testing.T) {
	repo := newFakeAuthorRepo()
	r := newTestRouter(repo)

	payload := []byte(`{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"dateOfBirth": "1815-12-10T00:00:00Z",
		"mainCategory": "Computing"
	}`)

	w := doRequest(r, http.MethodPost, "/api/authors", hateoasMediaType, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	linksField, ok := created["links"].([]interface{})
	require.True(t, ok, "response must include a links array")
	first := linksField[0].(map[string]interface{})
	assert.Equal(t, "self", first["rel"])

	// Following the self link returns the same resource.
	self := first["href"].(string)
	w2 := doRequest(r, http.MethodGet, self, hateoasMediaType, nil)
	require.Equal(t, http.StatusOK, w2.Code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &fetched))
	assert.Equal(t, created["id"], fetched["id"])
	assert.Equal(t, created["name"], fetched["name"])
}

func TestCreateAuthorWithInlineCourses(t *testing.T) {
	repo := newFakeAuthorRepo()
	r := newTestRouter(repo)

	payload := []byte(`{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"dateOfBirth": "1815-12-10T00:00:00Z",
		"mainCategory": "Computing",
		"courses": [{"title": "Analytical Engines", "description": "Programming before computers"}]
	}`)

	w := doRequest(r, http.MethodPost, "/api/authors", "", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAuthorValidationFailure(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	payload := []byte(`{
		"lastName": "Lovelace",
		"dateOfBirth": "1815-12-10T00:00:00Z",
		"mainCategory": "Computing"
	}`)

	w := doRequest(r, http.MethodPost, "/api/authors", "", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var problem struct {
		Status int                 `json:"status"`
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
	assert.Contains(t, problem.Errors, "firstName")
}

func TestCreateAuthorDeathBeforeBirth(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	payload := []byte(`{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"dateOfBirth": "1815-12-10T00:00:00Z",
		"dateOfDeath": "1810-01-01T00:00:00Z",
		"mainCategory": "Computing"
	}`)

	w := doRequest(r, http.MethodPost, "/api/authors", "", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var problem struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Contains(t, problem.Errors, "dateOfDeath")
}

func TestDeleteAuthor(t *testing.T) {
	repo := newFakeAuthorRepo()
	a := seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodDelete, "/api/authors/"+a.ID.String(), "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w2 := doRequest(r, http.MethodGet, "/api/authors/"+a.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestOptionsAuthors(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	w := doRequest(r, http.MethodOptions, "/api/authors", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET,HEAD,POST,OPTIONS", w.Header().Get("Allow"))
}

func TestAuthorCollectionRoundTrip(t *testing.T) {
	repo := newFakeAuthorRepo()
	r := newTestRouter(repo)

	payload := []byte(`[
		{"firstName": "Ada", "lastName": "Lovelace", "dateOfBirth": "1815-12-10T00:00:00Z", "mainCategory": "Computing"},
		{"firstName": "Grace", "lastName": "Hopper", "dateOfBirth": "1906-12-09T00:00:00Z", "mainCategory": "Computing"}
	]`)

	w := doRequest(r, http.MethodPost, "/api/authorcollections", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	w2 := doRequest(r, http.MethodGet, location, "", nil)
	require.Equal(t, http.StatusOK, w2.Code)

	var fetched []map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &fetched))
	assert.Len(t, fetched, 2)
}

func TestAuthorCollectionAnyMissingIs404(t *testing.T) {
	repo := newFakeAuthorRepo()
	a := seedAuthor(t, repo, "Ada", "Lovelace", "Computing")
	r := newTestRouter(repo)

	ids := a.ID.String() + "," + uuid.NewString()
	w := doRequest(r, http.MethodGet, "/api/authorcollections/"+ids, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorCollectionMalformedIDs(t *testing.T) {
	r := newTestRouter(newFakeAuthorRepo())

	w := doRequest(r, http.MethodGet, "/api/authorcollections/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
