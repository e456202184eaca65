package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pandroidYT/doxxd-backend/internal/dbx"
	"github.com/pandroidYT/doxxd-backend/internal/logging"
	"github.com/pandroidYT/doxxd-backend/internal/server/config"
	"github.com/pandroidYT/doxxd-backend/internal/server/models"
	postsrepo "github.com/pandroidYT/doxxd-backend/internal/server/repositories/posts"
	usersrepo "github.com/pandroidYT/doxxd-backend/internal/server/repositories/users"
	"github.com/pandroidYT/doxxd-backend/internal/server/services"
)

const testSecret = "test-secret"

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getByEmailOut *models.User
	getByEmailErr error

	getByIDOut *models.User
	getByIDErr error

	updateErr error

	created *models.User
	updated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	if u.ID == "" {
		u.ID = "u-created"
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	f.updated = u
	return f.updateErr
}

type fakePostsRepo struct {
	createErr error

	listOut []*models.PostWithAuthor
	listErr error

	created *models.Post
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	f.created = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	if p.ID == "" {
		p.ID = "p-created"
	}
	p.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return p, nil
}

func (f *fakePostsRepo) ListWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakePostsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository      { return m.p }

type testEnv struct {
	server *Server
	users  *fakeUsersRepo
	posts  *fakePostsRepo
	mock   sqlmock.Sqlmock
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret
	cfg.UploadDir = t.TempDir()

	u := &fakeUsersRepo{}
	p := &fakePostsRepo{}
	rm := &fakeRepoManager{u: u, p: p}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := NewServer(cfg, logger,
		services.NewUserService(db, rm, cfg),
		services.NewProfileService(db, rm, cfg),
		services.NewPostService(db, rm),
		cfg.UploadDir,
	)

	return &testEnv{server: srv, users: u, posts: p, mock: mock, cfg: cfg}
}
