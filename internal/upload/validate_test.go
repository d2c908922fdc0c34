package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestCheck_AcceptsAllowedTypes(t *testing.T) {
	v := NewValidator(0, nil)
	for _, ext := range []string{"png", "jpeg", "jpg", "gif", "bmp", "webp", "PNG", "JPG"} {
		path := writeFile(t, "qr."+ext, 128)
		if err := v.Check(path); err != nil {
			t.Errorf("Check(*.%s): unexpected rejection: %v", ext, err)
		}
	}
}

func TestCheck_RejectsDisallowedTypes(t *testing.T) {
	v := NewValidator(0, nil)
	for _, name := range []string{"notes.txt", "qr.pdf", "qr.svg", "qr", "archive.tar.gz"} {
		path := writeFile(t, name, 128)
		err := v.Check(path)
		if err == nil {
			t.Errorf("Check(%s): expected rejection", name)
			continue
		}
		if !IsKind(err, KindInvalidFileType) {
			t.Errorf("Check(%s): want KindInvalidFileType, got %v", name, err)
		}
	}
}

func TestCheck_RejectsOversizedFile(t *testing.T) {
	v := NewValidator(1024, nil)
	path := writeFile(t, "big.png", 1025)
	err := v.Check(path)
	if !IsKind(err, KindFileTooLarge) {
		t.Fatalf("want KindFileTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), "1025") {
		t.Errorf("rejection should name the actual size, got %q", err.Error())
	}
}

func TestCheck_AcceptsFileAtLimit(t *testing.T) {
	v := NewValidator(1024, nil)
	path := writeFile(t, "edge.png", 1024)
	if err := v.Check(path); err != nil {
		t.Errorf("file exactly at the limit should pass, got %v", err)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	v := NewValidator(0, nil)
	err := v.Check(filepath.Join(t.TempDir(), "absent.png"))
	if !IsKind(err, KindUnreadableFile) {
		t.Fatalf("want KindUnreadableFile, got %v", err)
	}
}

func TestCheck_Directory(t *testing.T) {
	v := NewValidator(0, nil)
	dir := filepath.Join(t.TempDir(), "shots.png")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := v.Check(dir); !IsKind(err, KindUnreadableFile) {
		t.Fatalf("want KindUnreadableFile for directory, got %v", err)
	}
}

func TestCheck_TypeRejectedBeforeStat(t *testing.T) {
	// A bad extension must be rejected without touching the filesystem.
	v := NewValidator(0, nil)
	err := v.Check("/definitely/not/there/readme.txt")
	if !IsKind(err, KindInvalidFileType) {
		t.Fatalf("want KindInvalidFileType, got %v", err)
	}
}

func TestAllowedExtensions(t *testing.T) {
	v := NewValidator(0, []string{"png", "jpg"})
	got := v.AllowedExtensions()
	want := []string{".jpg", ".png"}
	if len(got) != len(want) {
		t.Fatalf("AllowedExtensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllowedExtensions() = %v, want %v", got, want)
		}
	}
}
