package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsportal/news-api/internal/core/service"
	"github.com/newsportal/news-api/internal/infrastructure/db/redis"
	"github.com/newsportal/news-api/internal/infrastructure/db/sqlstore"
)

type testServer struct {
	t *testing.T
	e *echo.Echo
}

type credentials struct {
	username, password string
}

func newTestServer(t *testing.T, opts ...service.Option) *testServer {
	t.Helper()
	ctx := context.Background()
	db, err := sqlstore.Open(ctx, sqlstore.Config{Driver: sqlstore.DriverSQLite, DSN: ":memory:", MaxOpenConns: 1, MaxRetries: 1}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := sqlstore.NewUserRepository(db)
	news := sqlstore.NewNewsRepository(db)
	comments := sqlstore.NewCommentRepository(db)
	categories := sqlstore.NewCategoryRepository(db)
	log := zerolog.Nop()

	e := NewRouter(Dependencies{
		Log:        log,
		Auth:       service.NewAuthService(users, "test-secret", time.Hour),
		Users:      service.NewUserService(users, log, opts...),
		News:       service.NewNewsService(news, comments, categories, users, log, opts...),
		Comments:   service.NewCommentService(comments, news, users, log, opts...),
		Categories: service.NewCategoryService(categories, log, opts...),
		Audit:      service.NewAuditService(nil),
		SQL:        db,
		Registry:   prometheus.NewRegistry(),
	})
	return &testServer{t: t, e: e}
}

func (s *testServer) do(method, path, body string, auth *credentials, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if auth != nil {
		req.SetBasicAuth(auth.username, auth.password)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// signUp registers an account and returns its Location.
func (s *testServer) signUp(username string, roles ...string) (*credentials, string) {
	s.t.Helper()
	rolesJSON, _ := json.Marshal(roles)
	body := `{"username":"` + username + `","email":"` + username + `@example.com","password":"pass-` + username + `","roles":` + string(rolesJSON) + `}`
	rec := s.do(http.MethodPost, "/api/v2/user/sign-up", body, nil)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return &credentials{username: username, password: "pass-" + username}, rec.Header().Get(echo.HeaderLocation)
}

func (s *testServer) create(path, body string, auth *credentials, headers ...string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, path, body, auth, headers...)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return rec.Header().Get(echo.HeaderLocation)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestSignUpThenReadOwnAccount(t *testing.T) {
	s := newTestServer(t)
	alice, location := s.signUp("alice", "USER")
	assert.Equal(t, "/api/v2/user/1", location)

	rec := s.do(http.MethodGet, location, "", alice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rec.Body.String(), "pass-alice")
}

func TestSignUpDuplicateUsername(t *testing.T) {
	s := newTestServer(t)
	s.signUp("alice", "USER")

	rec := s.do(http.MethodPost, "/api/v2/user/sign-up", `{"username":"alice","email":"x@example.com","password":"secret","roles":["USER"]}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User with username = 'alice' already exists", decode(t, rec)["errorMessage"])
}

func TestSignUpValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v2/user/sign-up", `{"username":"ab","email":"a@example.com","password":"secret","roles":["ROOT"]}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Username length must be 3 <= length <= 50; User roles must be any of ['USER', 'MODERATOR', 'ADMIN']",
		decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodPost, "/api/v2/user/sign-up", `{"username":`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Malformed request body", decode(t, rec)["errorMessage"])
}

func TestUnauthenticatedRequest(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v2/news/filter?pageSize=1&pageNumber=0", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="news-api"`, rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "Authentication failure", decode(t, rec)["errorMessage"])

	s.signUp("alice", "USER")
	rec = s.do(http.MethodGet, "/api/v2/news/filter?pageSize=1&pageNumber=0", "", &credentials{"alice", "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserCannotReadOtherAccount(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.signUp("alice", "USER")
	_, bobLocation := s.signUp("bob", "USER")
	admin, _ := s.signUp("admin", "ADMIN")

	rec := s.do(http.MethodGet, bobLocation, "", alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User with id = '1' cannot get or change data of user with id = '2'", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodGet, bobLocation, "", admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserListRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	alice, _ := s.signUp("alice", "USER")
	admin, _ := s.signUp("admin", "ADMIN")

	rec := s.do(http.MethodGet, "/api/v2/user/filter?pageSize=10&pageNumber=0", "", alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No required authorities", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodGet, "/api/v2/user/filter?pageSize=10&pageNumber=0", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["users"], 2)
}

func TestRoleChangeRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	alice, location := s.signUp("alice", "USER")

	rec := s.do(http.MethodPut, location, `{"roles":["ADMIN"]}`, alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No required authorities", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodPut, location, `{"email":"new@example.com"}`, alice)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, location, "", alice)
	body := decode(t, rec)
	assert.Equal(t, "new@example.com", body["email"])
	assert.Equal(t, []any{"USER"}, body["roles"])
}

func TestNewsOwnership(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, _ := s.signUp("alice", "USER")
	bob, _ := s.signUp("bob", "USER")
	moderator, _ := s.signUp("moderator", "USER", "MODERATOR")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	newsLocation := s.create("/api/v2/news", `{"content":"hello","categoryId":1}`, alice)
	assert.Equal(t, "/api/v2/news/1", newsLocation)

	rec := s.do(http.MethodGet, newsLocation, "", bob)
	require.Equal(t, http.StatusOK, rec.Code)
	news := decode(t, rec)["news"].(map[string]any)
	assert.EqualValues(t, 2, news["authorId"], "author is the caller")

	rec = s.do(http.MethodPut, newsLocation, `{"content":"hijacked"}`, bob)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User with id = '3' cannot get or change data of news with id = '1'", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodDelete, newsLocation, "", bob)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, newsLocation, `{"content":"moderated"}`, moderator)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, newsLocation, "", alice)
	news = decode(t, rec)["news"].(map[string]any)
	assert.Equal(t, "moderated", news["content"])
	assert.EqualValues(t, 2, news["authorId"])

	rec = s.do(http.MethodPut, "/api/v2/news/99", `{"content":"x"}`, bob)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "News with id = '99' not found", decode(t, rec)["errorMessage"])
}

func TestCommentOwnership(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, _ := s.signUp("alice", "USER")
	bob, _ := s.signUp("bob", "USER")
	moderator, _ := s.signUp("moderator", "USER", "MODERATOR")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	s.create("/api/v2/news", `{"content":"hello","categoryId":1}`, admin)
	first := s.create("/api/v2/comment", `{"newsId":1,"content":"mine"}`, alice)
	second := s.create("/api/v2/comment", `{"newsId":1,"content":"also mine"}`, alice)
	assert.Equal(t, "/api/v2/comment/1", first)

	rec := s.do(http.MethodPut, first, `{"content":"hijacked"}`, bob)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User with id = '3' cannot get or change data of comment with id = '1'", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodDelete, first, "", bob)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "User with id = '3' cannot get or change data of comment with id = '1'", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodPut, first, `{"content":"edited"}`, alice)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPut, first, `{"content":"moderated"}`, moderator)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	body := decode(t, s.do(http.MethodGet, first, "", bob))
	assert.Equal(t, "moderated", body["content"])
	assert.EqualValues(t, 2, body["authorId"])

	rec = s.do(http.MethodDelete, first, "", moderator)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, first, "", alice).Code)

	rec = s.do(http.MethodDelete, second, "", admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, second, "", alice).Code)
}

func TestLongPassword(t *testing.T) {
	s := newTestServer(t)
	password := strings.Repeat("p", 100)

	rec := s.do(http.MethodPost, "/api/v2/user/sign-up",
		`{"username":"alice","email":"a@example.com","password":"`+password+`","roles":["USER"]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	location := rec.Header().Get(echo.HeaderLocation)
	alice := &credentials{username: "alice", password: password}

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, location, "", alice).Code)
	assert.Equal(t, http.StatusUnauthorized,
		s.do(http.MethodGet, location, "", &credentials{"alice", strings.Repeat("p", 99) + "q"}).Code)

	longer := strings.Repeat("x", 256)
	rec = s.do(http.MethodPut, location, `{"password":"`+longer+`"}`, alice)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, location, "", &credentials{"alice", longer}).Code)

	rec = s.do(http.MethodPost, "/api/v1/user",
		`{"username":"bob","email":"b@example.com","password":"`+longer+`","roles":["USER"]}`, nil)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestDuplicateRolesStoredOnce(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, location := s.signUp("alice", "USER", "USER", "USER")

	body := decode(t, s.do(http.MethodGet, location, "", alice))
	assert.Equal(t, []any{"USER"}, body["roles"])

	rec := s.do(http.MethodPut, location, `{"roles":["MODERATOR","USER","MODERATOR"]}`, admin)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	body = decode(t, s.do(http.MethodGet, location, "", admin))
	assert.Equal(t, []any{"MODERATOR", "USER"}, body["roles"])
}

func TestHugePageNumberIsEmptyPage(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	s.create("/api/v2/news-category", `{"name":"A"}`, admin)
	s.create("/api/v2/news-category", `{"name":"B"}`, admin)
	s.create("/api/v2/news", `{"content":"x","categoryId":1}`, admin)

	rec := s.do(http.MethodGet, "/api/v2/news-category/filter?pageSize=2&pageNumber=4611686018427387904", "", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"newsCategories":[]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v2/news/filter?pageSize=2&pageNumber=4611686018427387904", "", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"news":[]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v2/user/filter?pageSize=3&pageNumber=4611686018427387904", "", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"users":[]}`, rec.Body.String())
}

func TestCommentPartialUpdate(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, _ := s.signUp("alice", "USER")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	s.create("/api/v2/news", `{"content":"one","categoryId":1}`, alice)
	s.create("/api/v2/news", `{"content":"two","categoryId":1}`, alice)
	location := s.create("/api/v2/comment", `{"newsId":1,"content":"A"}`, alice)

	before := decode(t, s.do(http.MethodGet, location, "", alice))

	rec := s.do(http.MethodPut, location, `{"newsId":2,"content":"B"}`, alice)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	after := decode(t, s.do(http.MethodGet, location, "", alice))
	assert.Equal(t, "B", after["content"])
	assert.EqualValues(t, 2, after["newsId"])
	assert.Equal(t, before["id"], after["id"])
	assert.Equal(t, before["authorId"], after["authorId"])
	assert.Equal(t, before["creationDate"], after["creationDate"])

	rec = s.do(http.MethodGet, "/api/v2/comment/filter?newsId=2", "", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["comments"], 1)
}

func TestCategoryRoundTrip(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, _ := s.signUp("alice", "USER")

	rec := s.do(http.MethodPost, "/api/v2/news-category", `{"name":"Foo"}`, alice)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	location := s.create("/api/v2/news-category", `{"name":"Foo"}`, admin)

	rec = s.do(http.MethodGet, location, "", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Foo"}`, rec.Body.String())
}

func TestCategoryInUseCannotBeDeleted(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	s.create("/api/v2/news", `{"content":"x","categoryId":1}`, admin)

	rec := s.do(http.MethodDelete, "/api/v2/news-category/1", "", admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteMissingCommentIsNoContent(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")

	rec := s.do(http.MethodDelete, "/api/v2/comment/12345", "", admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewsFilter(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, _ := s.signUp("alice", "USER")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	s.create("/api/v2/news", `{"content":"first","categoryId":1}`, admin)
	s.create("/api/v2/news", `{"content":"second","categoryId":1}`, alice)
	s.create("/api/v2/comment", `{"newsId":1,"content":"c"}`, alice)

	for i := 0; i < 2; i++ {
		rec := s.do(http.MethodGet, "/api/v2/news/filter?pageSize=1&pageNumber=0", "", alice)
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode(t, rec)["news"].([]any)
		require.Len(t, list, 1)
		first := list[0].(map[string]any)
		assert.EqualValues(t, 1, first["id"])
		assert.EqualValues(t, 1, first["commentsCount"])
	}

	rec := s.do(http.MethodGet, "/api/v2/news/filter?pageSize=10&pageNumber=0&author=alice", "", alice)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode(t, rec)["news"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].(map[string]any)["content"])

	rec = s.do(http.MethodGet, "/api/v2/news/filter", "", alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Page size must be specified; Page number must be specified", decode(t, rec)["errorMessage"])

	rec = s.do(http.MethodGet, "/api/v2/news/filter?pageSize=abc&pageNumber=0", "", alice)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid value 'abc' for parameter 'pageSize'", decode(t, rec)["errorMessage"])
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.signUp("admin", "ADMIN")
	alice, aliceLocation := s.signUp("alice", "USER")

	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)
	newsLocation := s.create("/api/v2/news", `{"content":"by alice","categoryId":1}`, alice)
	commentLocation := s.create("/api/v2/comment", `{"newsId":1,"content":"admin says hi"}`, admin)

	rec := s.do(http.MethodDelete, aliceLocation, "", alice)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, newsLocation, "", admin).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, commentLocation, "", admin).Code)
}

func TestBearerToken(t *testing.T) {
	s := newTestServer(t)
	alice, location := s.signUp("alice", "USER")

	rec := s.do(http.MethodPost, "/api/v2/user/token", "", alice)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = s.do(http.MethodGet, location, "", nil, echo.HeaderAuthorization, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, location, "", nil, echo.HeaderAuthorization, "Bearer "+token+"x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdempotentNewsCreate(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	s := newTestServer(t, service.WithIdempotency(redis.NewIdempotencyStore(client, time.Hour)))

	admin, _ := s.signUp("admin", "ADMIN")
	s.create("/api/v2/news-category", `{"name":"Tech"}`, admin)

	first := s.create("/api/v2/news", `{"content":"once","categoryId":1}`, admin, "Idempotency-Key", "k-1")
	second := s.create("/api/v2/news", `{"content":"once","categoryId":1}`, admin, "Idempotency-Key", "k-1")
	assert.Equal(t, first, second)

	rec := s.do(http.MethodGet, "/api/v2/news/filter?pageSize=10&pageNumber=0", "", admin)
	assert.Len(t, decode(t, rec)["news"], 1)
}

func TestLegacySurface(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/user", `{"username":"alice","email":"a@example.com","password":"secret","roles":["USER"]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/api/v1/user/1", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "alice", decode(t, rec)["username"])

	rec = s.do(http.MethodPost, "/api/v1/news_category", `{"name":"Tech"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Tech"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/news", `{"authorId":1,"categoryId":1,"content":"legacy"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.EqualValues(t, 1, decode(t, rec)["authorId"])

	rec = s.do(http.MethodPost, "/api/v1/news", `{"authorId":42,"categoryId":1,"content":"ghost"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/news-category/1", `{"name":"Science"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Science"}`, rec.Body.String())
}

func TestOperationalEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ok", decode(t, rec)["status"])

	s.do(http.MethodGet, "/health", "", nil)
	rec = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "requests_total")
}
