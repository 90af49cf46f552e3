package upload_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/datagraph/upload"
)

func TestBody_FilesAndValues(t *testing.T) {
	b := upload.NewBody()
	b.AddPart("title", "hello")
	b.AddPart("avatar", &upload.File{Field: "avatar", Name: "a.png", Size: 3, Data: []byte{1, 2, 3}})

	if !b.HasFile() || !b.IsFile("avatar") || b.IsFile("title") {
		t.Fatalf("file detection broken")
	}
	f, err := b.File("avatar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := io.ReadAll(f.Open())
	if len(data) != 3 {
		t.Fatalf("want=3 bytes got=%d", len(data))
	}
	if _, err := b.File("title"); !errors.Is(err, upload.ErrNoFile) {
		t.Fatalf("want ErrNoFile got=%v", err)
	}
	if v := b.Values(); v.Len() != 1 {
		t.Fatalf("want one value got=%d", v.Len())
	}
}

func TestFile_SaveTo(t *testing.T) {
	dir := t.TempDir()
	f := &upload.File{Name: "x.txt", Data: []byte("abc")}
	path := filepath.Join(dir, "out.txt")
	if err := f.SaveTo(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "abc" {
		t.Fatalf("want=abc got=%s", got)
	}
	if err := (&upload.File{}).SaveTo(path); !errors.Is(err, upload.ErrNoFile) {
		t.Fatalf("want ErrNoFile got=%v", err)
	}
}
