package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"golang.org/x/oauth2/google"

	"github.com/momorit/mein-formularprojekt/internal/config"
	"github.com/momorit/mein-formularprojekt/internal/entity"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveStore talks to the Google Drive v3 REST API directly. The SDK is
// deliberately not used: the service needs exactly three calls (list,
// create folder, multipart upload), and a plain client keeps the store
// testable against httptest.
type DriveStore struct {
	client        *http.Client
	apiBaseURL    string
	uploadBaseURL string
	folderName    string
}

// NewDriveStore builds a store from service-account credentials. Returns
// an error when the credentials JSON cannot be parsed; the caller then
// runs without remote storage.
func NewDriveStore(ctx context.Context, cfg config.DriveConfig) (*DriveStore, error) {
	creds, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, fmt.Errorf("no drive credentials configured")
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, "https://www.googleapis.com/auth/drive.file")
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	client := jwtCfg.Client(ctx)
	client.Timeout = cfg.Timeout

	return &DriveStore{
		client:        client,
		apiBaseURL:    cfg.APIBaseURL,
		uploadBaseURL: cfg.UploadBaseURL,
		folderName:    cfg.FolderName,
	}, nil
}

// NewDriveStoreWithClient is used by tests to inject a plain client and a
// fake API endpoint.
func NewDriveStoreWithClient(client *http.Client, apiBaseURL, uploadBaseURL, folderName string) *DriveStore {
	return &DriveStore{
		client:        client,
		apiBaseURL:    apiBaseURL,
		uploadBaseURL: uploadBaseURL,
		folderName:    folderName,
	}
}

type driveFile struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	WebViewLink string `json:"webViewLink,omitempty"`
}

type driveFileList struct {
	Files []driveFile `json:"files"`
}

// EnsureFolder looks the study folder up by exact name and creates it
// only when absent. The lookup-before-create makes repeated calls
// idempotent: the second call returns the identifier of the first.
func (s *DriveStore) EnsureFolder(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("q", fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", s.folderName, folderMimeType))
	query.Set("fields", "files(id,name)")

	var list driveFileList
	if err := s.getJSON(ctx, s.apiBaseURL+"/files?"+query.Encode(), &list); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrFolderLookup, err)
	}

	if len(list.Files) > 0 {
		return list.Files[0].ID, nil
	}

	created, err := s.postJSON(ctx, s.apiBaseURL+"/files", driveFile{
		Name:     s.folderName,
		MimeType: folderMimeType,
	})
	if err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	return created.ID, nil
}

// Upload stores the document inside the study folder via a
// multipart/related upload and returns the file id and view link.
func (s *DriveStore) Upload(ctx context.Context, filename string, content []byte) (string, string, error) {
	folderID, err := s.EnsureFolder(ctx)
	if err != nil {
		return "", "", err
	}

	metadata := map[string]any{
		"name":     filename,
		"parents":  []string{folderID},
		"mimeType": "application/json",
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	metaPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"application/json; charset=UTF-8"},
	})
	if err != nil {
		return "", "", fmt.Errorf("create metadata part: %w", err)
	}
	if err := json.NewEncoder(metaPart).Encode(metadata); err != nil {
		return "", "", fmt.Errorf("encode metadata: %w", err)
	}

	mediaPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"application/json"},
	})
	if err != nil {
		return "", "", fmt.Errorf("create media part: %w", err)
	}
	if _, err := mediaPart.Write(content); err != nil {
		return "", "", fmt.Errorf("write media: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", "", fmt.Errorf("close multipart body: %w", err)
	}

	uploadURL := s.uploadBaseURL + "/files?uploadType=multipart&fields=id,webViewLink"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return "", "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+writer.Boundary())

	var uploaded driveFile
	if err := s.do(req, &uploaded); err != nil {
		return "", "", fmt.Errorf("upload %s: %w", filename, err)
	}

	return uploaded.ID, uploaded.WebViewLink, nil
}

func (s *DriveStore) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *DriveStore) postJSON(ctx context.Context, url string, in driveFile) (*driveFile, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out driveFile
	if err := s.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DriveStore) do(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("drive API %d: %s", resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode drive response: %w", err)
		}
	}
	return nil
}
