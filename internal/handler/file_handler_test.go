package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/meetapp/meetapp-backend/internal/handler"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

func uploadRequest(t *testing.T, contentType string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="file"; filename="banner"`},
		"Content-Type":        {contentType},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, "/files", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestFileUploadRejectsNonImage(t *testing.T) {
	app := fiber.New()
	fileHandler := handler.NewFileHandler(nil, utils.NewValidator())
	app.Post("/files", fileHandler.Store)

	resp, err := app.Test(uploadRequest(t, "text/plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for a text upload, got %d", resp.StatusCode)
	}
}
