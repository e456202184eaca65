package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pandroidYT/doxxd-backend/internal/server/models"
)

type createPostRequest struct {
	Content string `json:"content"`
}

type createPostResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type postAuthor struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	ProfilePicURL string `json:"profilePicUrl"`
}

type postItem struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	User      postAuthor `json:"user"`
}

func (s *Server) handlePostCreate(w http.ResponseWriter, r *http.Request) {

	userID := UserIDFromContext(r.Context())

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := s.posts.Create(r.Context(), userID, req.Content)
	if err != nil {
		s.logger.Error(r.Context(), "post create failed", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, createPostResponse{
		ID:        post.ID,
		User:      post.UserID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	})
}

func (s *Server) handlePostList(w http.ResponseWriter, r *http.Request) {

	posts, err := s.posts.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "post list failed", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, toPostItems(posts))
}

func toPostItems(posts []*models.PostWithAuthor) []postItem {
	items := make([]postItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, postItem{
			ID:        p.ID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			User: postAuthor{
				ID:            p.UserID,
				Username:      p.Username,
				ProfilePicURL: p.ProfilePicURL,
			},
		})
	}
	return items
}
