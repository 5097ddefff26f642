package service

import (
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"github.com/meetapp/meetapp-backend/pkg/storage"
)

type FileService struct {
	fileRepo *repository.FileRepository
	storage  storage.StorageService
}

func NewFileService(fileRepo *repository.FileRepository, storage storage.StorageService) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// Upload stores the banner under a UUID key and records its metadata.
func (s *FileService) Upload(fileHeader *multipart.FileHeader) (*models.File, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	if err := s.storage.Upload(key, src); err != nil {
		return nil, err
	}

	file := &models.File{
		Name: fileHeader.Filename,
		Path: key,
		URL:  s.storage.PublicURL(key),
	}

	if err := s.fileRepo.Create(file); err != nil {
		// The row is the source of truth; drop the orphaned object.
		_ = s.storage.Delete(key)
		return nil, err
	}

	return file, nil
}
