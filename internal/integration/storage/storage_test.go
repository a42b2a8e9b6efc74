package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wardrobe-manager/backend/config"
)

func TestFileSystemImageStore_PutDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFileSystemImageStore(root, "/uploads/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	stored, err := store.Put(ctx, "clothes/item-1/a.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if stored.URL != "/uploads/clothes/item-1/a.jpg" {
		t.Errorf("url = %s", stored.URL)
	}
	if stored.PublicID != "clothes/item-1/a.jpg" || stored.Size != int64(len("jpeg-bytes")) {
		t.Errorf("stored = %+v", stored)
	}

	data, err := os.ReadFile(filepath.Join(root, "clothes", "item-1", "a.jpg"))
	if err != nil || string(data) != "jpeg-bytes" {
		t.Fatalf("file content = %q, err %v", data, err)
	}

	if err := store.Delete(ctx, stored.PublicID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "clothes", "item-1", "a.jpg")); !os.IsNotExist(err) {
		t.Error("file still present after delete")
	}
	if err := store.Delete(ctx, stored.PublicID); err != nil {
		t.Errorf("deleting a missing image should succeed, got %v", err)
	}
}

func TestFileSystemImageStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewFileSystemImageStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, key := range []string{"", "../outside.jpg", "/etc/passwd", "clothes/../../x.jpg"} {
		t.Run(key, func(t *testing.T) {
			_, err := store.Put(context.Background(), key, strings.NewReader("x"), "image/png")
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Put(%q) error = %v, want ErrInvalidKey", key, err)
			}
		})
	}
}

// fakeS3 answers PutObject and DeleteObject for path-style requests.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(req.URL.Path, "/test-bucket/")
	switch req.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		f.objects[key] = body
		f.types[key] = req.Header.Get("Content-Type")
		return response(http.StatusOK), nil
	case http.MethodDelete:
		delete(f.objects, key)
		return response(http.StatusNoContent), nil
	}
	return response(http.StatusNotImplemented), nil
}

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     http.Header{"Etag": {`"etag"`}},
	}
}

func newFakeS3Store(t *testing.T) (*S3ImageStore, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	store, err := NewS3ImageStore(context.Background(), config.StorageConfig{
		Bucket:    "test-bucket",
		Region:    "us-east-1",
		Endpoint:  "https://mock.s3.local",
		AccessKey: "AKIA",
		SecretKey: "SECRET",
	}, func(o *s3.Options) {
		o.HTTPClient = &http.Client{Transport: fake}
	})
	if err != nil {
		t.Fatalf("new s3 store: %v", err)
	}
	return store, fake
}

func TestS3ImageStore_PutDelete(t *testing.T) {
	ctx := context.Background()
	store, fake := newFakeS3Store(t)

	stored, err := store.Put(ctx, "accessories/acc-1/b.png", strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if stored.URL != "https://mock.s3.local/test-bucket/accessories/acc-1/b.png" {
		t.Errorf("url = %s", stored.URL)
	}
	if stored.Size != int64(len("png-bytes")) {
		t.Errorf("size = %d", stored.Size)
	}

	body, ok := fake.objects["accessories/acc-1/b.png"]
	if !ok {
		t.Fatalf("object not uploaded; have %v", fake.objects)
	}
	if !bytes.Contains(body, []byte("png-bytes")) {
		t.Errorf("uploaded body = %q", body)
	}
	if fake.types["accessories/acc-1/b.png"] != "image/png" {
		t.Errorf("content type = %s", fake.types["accessories/acc-1/b.png"])
	}

	if err := store.Delete(ctx, stored.PublicID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := fake.objects["accessories/acc-1/b.png"]; ok {
		t.Error("object still present after delete")
	}
}

func TestObjectBaseURL(t *testing.T) {
	if got := objectBaseURL("", "bucket", "eu-west-1"); got != "https://bucket.s3.eu-west-1.amazonaws.com" {
		t.Errorf("aws url = %s", got)
	}
	if got := objectBaseURL("http://minio:9000/", "bucket", "us-east-1"); got != "http://minio:9000/bucket" {
		t.Errorf("endpoint url = %s", got)
	}
}

func TestNew_Drivers(t *testing.T) {
	store, err := New(context.Background(), config.StorageConfig{Driver: config.StorageDriverFS, Dir: t.TempDir(), PublicURL: "/uploads"})
	if err != nil {
		t.Fatalf("fs store: %v", err)
	}
	if _, ok := store.(*FileSystemImageStore); !ok {
		t.Errorf("store = %T, want *FileSystemImageStore", store)
	}

	if _, err := New(context.Background(), config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
