package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"khatreez/internal/models"
	"khatreez/internal/repository"
)

type mockBlogRepo struct {
	blogs      []*models.Blog
	nextID     int
	lastLimit  int
	lastStatus string
}

func newMockBlogRepo() *mockBlogRepo { return &mockBlogRepo{nextID: 1} }

func (m *mockBlogRepo) Create(_ context.Context, b *models.Blog) (*models.Blog, error) {
	out := *b
	out.ID = m.nextID
	m.nextID++
	m.blogs = append([]*models.Blog{&out}, m.blogs...)
	return &out, nil
}

func (m *mockBlogRepo) ListRecent(_ context.Context, limit int) ([]*models.Blog, error) {
	m.lastLimit = limit
	if limit > len(m.blogs) {
		limit = len(m.blogs)
	}
	return m.blogs[:limit], nil
}

func (m *mockBlogRepo) ListFeatured(_ context.Context) ([]*models.Blog, error) {
	out := []*models.Blog{}
	for _, b := range m.blogs {
		if b.Main {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBlogRepo) ListAll(_ context.Context) ([]*models.Blog, error) { return m.blogs, nil }

func (m *mockBlogRepo) ListByStatus(_ context.Context, status string, limit int) ([]*models.Blog, error) {
	m.lastStatus = status
	m.lastLimit = limit
	out := []*models.Blog{}
	for _, b := range m.blogs {
		if b.Status == status && len(out) < limit {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBlogRepo) SearchByTitle(_ context.Context, _ string, limit int) ([]*models.Blog, error) {
	m.lastLimit = limit
	return []*models.Blog{}, nil
}

func (m *mockBlogRepo) GetByID(_ context.Context, id int) (*models.Blog, error) {
	for _, b := range m.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockBlogRepo) Delete(_ context.Context, id int) (int64, error) {
	for i, b := range m.blogs {
		if b.ID == id {
			m.blogs = append(m.blogs[:i], m.blogs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func fixedBlogService(repo repository.BlogRepo) BlogService {
	return &blogService{
		repo: repo,
		now:  func() time.Time { return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateBlog(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	created, err := service.Create(context.Background(), models.CreateBlogRequest{
		Title:    "Test Post",
		Article:  "content",
		Status:   "published",
		ImageURL: "http://x/y.png",
		Check:    "on",
	})
	if err != nil {
		t.Fatalf("ошибка создания статьи: %v", err)
	}

	if created.Slug != "test-post" {
		t.Errorf("слаг = %q, ожидалось %q", created.Slug, "test-post")
	}
	if !created.Main {
		t.Error("check=on должен давать main=true")
	}
	if created.Datetime != "5-03-2024" {
		t.Errorf("дата = %q, ожидалось %q", created.Datetime, "5-03-2024")
	}
}

func TestCreateBlogMissingFields(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	base := models.CreateBlogRequest{
		Title:    "Test Post",
		Article:  "content",
		Status:   "published",
		ImageURL: "http://x/y.png",
	}

	variants := []func(models.CreateBlogRequest) models.CreateBlogRequest{
		func(r models.CreateBlogRequest) models.CreateBlogRequest { r.Title = ""; return r },
		func(r models.CreateBlogRequest) models.CreateBlogRequest { r.Article = "  "; return r },
		func(r models.CreateBlogRequest) models.CreateBlogRequest { r.Status = ""; return r },
		func(r models.CreateBlogRequest) models.CreateBlogRequest { r.ImageURL = ""; return r },
	}

	for i, mutate := range variants {
		_, err := service.Create(context.Background(), mutate(base))
		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("вариант %d: ожидался ErrMissingFields, получено %v", i, err)
		}
	}
	if len(repo.blogs) != 0 {
		t.Fatalf("строки вставлены несмотря на ошибки валидации: %d", len(repo.blogs))
	}
}

func TestCreateBlogCheckboxOff(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	for _, check := range []string{"", "off", "true"} {
		created, err := service.Create(context.Background(), models.CreateBlogRequest{
			Title:    "Another",
			Article:  "content",
			Status:   "draft",
			ImageURL: "http://x/y.png",
			Check:    check,
		})
		if err != nil {
			t.Fatalf("ошибка создания: %v", err)
		}
		if created.Main {
			t.Errorf("check=%q не должен давать main=true", check)
		}
	}
}

func TestListRecentDefaultLimit(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	if _, err := service.ListRecent(context.Background(), 0); err != nil {
		t.Fatalf("ошибка списка: %v", err)
	}
	if repo.lastLimit != DefaultListLimit {
		t.Fatalf("лимит = %d, ожидался дефолт %d", repo.lastLimit, DefaultListLimit)
	}
}

func TestComponentFeedSize(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	if _, err := service.ListComponentFeed(context.Background()); err != nil {
		t.Fatalf("ошибка ленты: %v", err)
	}
	if repo.lastLimit != ComponentFeedSize {
		t.Fatalf("лимит ленты = %d, ожидалось %d", repo.lastLimit, ComponentFeedSize)
	}
}

func TestSearchLimit(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	if _, err := service.SearchByTitle(context.Background(), "test"); err != nil {
		t.Fatalf("ошибка поиска: %v", err)
	}
	if repo.lastLimit != SearchLimit {
		t.Fatalf("лимит поиска = %d, ожидалось %d", repo.lastLimit, SearchLimit)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	created, err := service.Create(context.Background(), models.CreateBlogRequest{
		Title:    "Test Post",
		Article:  "content",
		Status:   "published",
		ImageURL: "http://x/y.png",
		Check:    "on",
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}

	deleted, err := service.Delete(context.Background(), created.ID)
	if err != nil || !deleted {
		t.Fatalf("первое удаление: deleted=%v err=%v", deleted, err)
	}

	// Повторное удаление — не ошибка, просто ничего не удалено.
	deleted, err = service.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("повторное удаление вернуло ошибку: %v", err)
	}
	if deleted {
		t.Fatal("повторное удаление не должно находить строку")
	}
}

// Сквозной сценарий: создание → попадание в избранное → удаление.
func TestCreateFeaturedDeleteFlow(t *testing.T) {
	repo := newMockBlogRepo()
	service := fixedBlogService(repo)

	created, err := service.Create(context.Background(), models.CreateBlogRequest{
		Title:    "Test Post",
		Article:  "content",
		Status:   "published",
		ImageURL: "http://x/y.png",
		Check:    "on",
	})
	if err != nil {
		t.Fatalf("ошибка создания: %v", err)
	}

	featured, err := service.ListFeatured(context.Background())
	if err != nil {
		t.Fatalf("ошибка избранного: %v", err)
	}
	found := false
	for _, b := range featured {
		if b.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("созданная статья с check=on не попала в избранное")
	}

	if _, err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("ошибка удаления: %v", err)
	}
	if _, err := service.GetByID(context.Background(), created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("статья осталась после удаления: %v", err)
	}
}
