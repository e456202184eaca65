package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pandroidYT/doxxd-backend/internal/common"
	"github.com/pandroidYT/doxxd-backend/internal/dbx"
	"github.com/pandroidYT/doxxd-backend/internal/server/config"
	"github.com/pandroidYT/doxxd-backend/internal/server/repositories/repomanager"
)

// Profile is the public view of a user returned by the profile endpoint.
type Profile struct {
	Username      string
	Bio           string
	ProfilePicURL string
}

// AvatarUpload carries an uploaded avatar file and the extension of its
// original filename (including the leading dot, possibly empty).
type AvatarUpload struct {
	File io.Reader
	Ext  string
}

// ProfileService reads and updates user profiles, including avatar files
// stored under the configured upload directory.
type ProfileService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	uploadDir        string
	uploadURLPrefix  string
	defaultAvatarURL string
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ProfileService {
	return &ProfileService{
		db:               db,
		repomanager:      m,
		uploadDir:        cfg.UploadDir,
		uploadURLPrefix:  cfg.UploadURLPrefix,
		defaultAvatarURL: cfg.DefaultAvatarURL,
	}
}

// Get returns the profile of the given principal. A principal whose record
// was removed from the store yields common.ErrorNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*Profile, error) {

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	picURL := user.ProfilePicURL
	if picURL == "" {
		picURL = s.defaultAvatarURL
	}

	return &Profile{
		Username:      user.Username,
		Bio:           user.Bio,
		ProfilePicURL: picURL,
	}, nil
}

// Update applies a partial profile update: empty username/bio and a nil
// avatar leave the corresponding field untouched. The read-modify-write runs
// in a transaction so concurrent updates cannot interleave field-wise.
func (s *ProfileService) Update(ctx context.Context, userID, username, bio string, avatar *AvatarUpload) error {

	var avatarURL string
	if avatar != nil {
		url, err := s.saveAvatar(userID, avatar)
		if err != nil {
			return common.ErrorInternal
		}
		avatarURL = url
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if username != "" {
			user.Username = username
		}
		if bio != "" {
			user.Bio = bio
		}
		if avatarURL != "" {
			user.ProfilePicURL = avatarURL
		}

		return repo.Update(ctx, user)
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
		return common.ErrorInternal
	}

	return nil
}

// saveAvatar writes the uploaded file to <uploadDir>/<userID><ext> and
// returns the public URL it will be served under.
func (s *ProfileService) saveAvatar(userID string, avatar *AvatarUpload) (string, error) {

	ext := sanitizeExt(avatar.Ext)
	name := userID + ext

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, avatar.File); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return s.uploadURLPrefix + "/" + name, nil
}

// sanitizeExt keeps only a plain ".ext" suffix; anything containing path
// separators or not starting with a dot is discarded.
func sanitizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		return ""
	}
	if strings.ContainsAny(ext, `/\`) || strings.Contains(ext, "..") {
		return ""
	}
	return ext
}
