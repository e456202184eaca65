package posts

import (
	"context"

	"github.com/pandroidYT/doxxd-backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	ListWithAuthors(ctx context.Context) ([]*models.PostWithAuthor, error)
}
