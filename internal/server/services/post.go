package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pandroidYT/doxxd-backend/internal/common"
	"github.com/pandroidYT/doxxd-backend/internal/server/models"
	"github.com/pandroidYT/doxxd-backend/internal/server/repositories/repomanager"
)

// PostService creates and lists posts. Posts are immutable once created.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Create stores a new post authored by the given principal.
func (s *PostService) Create(ctx context.Context, userID, content string) (*models.Post, error) {

	post := &models.Post{UserID: userID, Content: content}

	post, err := s.repomanager.Posts(s.db).Create(ctx, post)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return post, nil
}

// List returns all posts, newest first, with each author's username and
// avatar joined in.
func (s *PostService) List(ctx context.Context) ([]*models.PostWithAuthor, error) {

	posts, err := s.repomanager.Posts(s.db).ListWithAuthors(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return posts, nil
}
