package httpapi

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/pandroidYT/doxxd-backend/internal/common"
	"github.com/pandroidYT/doxxd-backend/internal/server/services"
)

// maxAvatarMemory bounds the in-memory portion of multipart parsing; larger
// uploads spill to temp files.
const maxAvatarMemory = 8 << 20

type profileResponse struct {
	Success bool        `json:"success"`
	User    profileBody `json:"user"`
}

type profileBody struct {
	Username      string `json:"username"`
	Bio           string `json:"bio"`
	ProfilePicURL string `json:"profilePicUrl"`
}

type profileUpdateResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {

	userID := UserIDFromContext(r.Context())

	profile, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error(r.Context(), "profile read failed", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Success: true,
		User: profileBody{
			Username:      profile.Username,
			Bio:           profile.Bio,
			ProfilePicURL: profile.ProfilePicURL,
		},
	})
}

func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {

	userID := UserIDFromContext(r.Context())

	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	username := r.FormValue("username")
	bio := r.FormValue("bio")

	var avatar *services.AvatarUpload
	file, header, err := r.FormFile("profilePic")
	switch {
	case err == nil:
		defer file.Close()
		avatar = &services.AvatarUpload{
			File: file,
			Ext:  filepath.Ext(header.Filename),
		}
	case errors.Is(err, http.ErrMissingFile):
		// no avatar in this update
	default:
		errorJSON(w, http.StatusBadRequest, "Invalid profile picture upload")
		return
	}

	if err := s.profiles.Update(r.Context(), userID, username, bio, avatar); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			errorJSON(w, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrorAlreadyExists):
			errorJSON(w, http.StatusBadRequest, "Username already taken")
		default:
			s.logger.Error(r.Context(), "profile update failed", "error", err.Error())
			errorJSON(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, profileUpdateResponse{
		Success: true,
		Msg:     "Profile updated successfully!",
	})
}
