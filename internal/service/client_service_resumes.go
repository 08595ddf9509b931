package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/models"
)

// resumeFormField is the multipart field name the backend reads the file from.
const resumeFormField = "resume"

type resumeService struct {
	dispatcher adapter.Dispatcher
	logger     *logger.Logger
}

func NewResumeService(dispatcher adapter.Dispatcher, logger *logger.Logger) ResumeService {
	return &resumeService{dispatcher: dispatcher, logger: logger}
}

func (s *resumeService) Upload(ctx context.Context, fileName string, r io.Reader) (models.UploadResponse, error) {
	if r == nil || strings.TrimSpace(fileName) == "" {
		return models.UploadResponse{}, ErrNoFileProvided
	}

	form := models.UploadForm{Field: resumeFormField, FileName: fileName, Reader: r}
	resp, err := adapter.Upload[models.UploadResponse](ctx, s.dispatcher, "/resumes/upload", form)
	if err != nil {
		return models.UploadResponse{}, err
	}
	return resp.Value(), nil
}

// UploadFile opens the file at path and uploads it under its base name.
func (s *resumeService) UploadFile(ctx context.Context, path string) (models.UploadResponse, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.UploadResponse{}, ErrNoFileProvided
	}

	f, err := os.Open(path)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: %w", ErrNoFileProvided, err)
	}
	defer f.Close()

	s.logger.Debug().Str("func", "resumeService.UploadFile").Str("file", filepath.Base(path)).Msg("uploading resume")
	return s.Upload(ctx, filepath.Base(path), f)
}

func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	resp, err := adapter.Get[[]models.Resume](ctx, s.dispatcher, "/resumes")
	if err != nil {
		return nil, err
	}
	if resumes := resp.Value(); resumes != nil {
		return resumes, nil
	}
	return []models.Resume{}, nil
}

func (s *resumeService) Get(ctx context.Context, id string) (models.Resume, error) {
	path, err := resumePath(id)
	if err != nil {
		return models.Resume{}, err
	}

	resp, err := adapter.Get[models.Resume](ctx, s.dispatcher, path)
	if err != nil {
		return models.Resume{}, err
	}
	if resp.Data == nil {
		return models.Resume{}, adapter.NewUnexpectedResponseError(ErrEmptyResume)
	}
	return *resp.Data, nil
}

func (s *resumeService) Delete(ctx context.Context, id string) error {
	path, err := resumePath(id)
	if err != nil {
		return err
	}

	_, err = adapter.Delete[json.RawMessage](ctx, s.dispatcher, path)
	return err
}

// AIParse asks the backend to extract structured data from plain resume text.
func (s *resumeService) AIParse(ctx context.Context, text string) (models.ExtractedData, error) {
	if strings.TrimSpace(text) == "" {
		return models.ExtractedData{}, ErrEmptyResumeText
	}

	resp, err := adapter.Post[models.ExtractedData](ctx, s.dispatcher, "/resumes/ai-parse", models.ResumeParseRequest{Text: text})
	if err != nil {
		return models.ExtractedData{}, err
	}
	return resp.Value(), nil
}

func resumePath(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyResumeID
	}
	return "/resumes/" + url.PathEscape(id), nil
}
