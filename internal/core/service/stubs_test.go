package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory repositories shared by the service tests.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = &u
	clone := u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityUser, id)
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.UsernameNotFound(username)
}

func (r *stubUserRepo) List(_ context.Context, page ports.Page) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, page), nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type stubNewsRepo struct {
	items  map[int64]*domain.News
	nextID int64
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{items: make(map[int64]*domain.News)}
}

func (r *stubNewsRepo) FindByID(_ context.Context, id int64) (*domain.News, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityNews, id)
	}
	clone := *n
	return &clone, nil
}

func (r *stubNewsRepo) List(_ context.Context, f ports.NewsFilter) ([]domain.NewsSummary, error) {
	out := make([]domain.NewsSummary, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, domain.NewsSummary{News: *n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Page), nil
}

func (r *stubNewsRepo) Create(_ context.Context, n *domain.News) error {
	r.nextID++
	n.ID = r.nextID
	clone := *n
	r.items[n.ID] = &clone
	return nil
}

func (r *stubNewsRepo) Update(_ context.Context, n *domain.News) error {
	clone := *n
	r.items[n.ID] = &clone
	return nil
}

func (r *stubNewsRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type stubCommentRepo struct {
	items  map[int64]*domain.Comment
	nextID int64
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{items: make(map[int64]*domain.Comment)}
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityComment, id)
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) ListByNews(_ context.Context, newsID int64) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for _, c := range r.items {
		if c.NewsID == newsID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type stubCategoryRepo struct {
	items     map[int64]*domain.NewsCategory
	nextID    int64
	deleteErr error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{items: make(map[int64]*domain.NewsCategory)}
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.NewsCategory, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.NotFound(domain.EntityCategory, id)
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context, page ports.Page) ([]domain.NewsCategory, error) {
	out := make([]domain.NewsCategory, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, page), nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.NewsCategory) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.NewsCategory) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.items, id)
	return nil
}

func paginate[T any](items []T, page ports.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ---------------------------------------------------------------------------
// Side-channel stubs
// ---------------------------------------------------------------------------

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(e domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

type stubIdempotency struct {
	keys      map[string]int64
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) Lookup(_ context.Context, scope, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	id, ok := s.keys[scope+"|"+key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key string, id int64) error {
	s.keys[scope+"|"+key] = id
	return nil
}

var errBoom = errors.New("boom")
