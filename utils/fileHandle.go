package utils

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Allowed upload extensions per content kind.
var (
	VideoExtensions    = []string{".mp4", ".mov", ".webm", ".mkv"}
	PdfExtensions      = []string{".pdf"}
	AvatarExtensions   = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	HomeworkExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".zip", ".jpg", ".jpeg", ".png"}
)

var ErrExtensionNotAllowed = errors.New("file extension not allowed")

var uploadRng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SaveUploadedFile stores an upload under destDir with a unique name.
// When allowed is non-empty the file extension must be in the list.
func SaveUploadedFile(file *multipart.FileHeader, destDir string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowed) > 0 && !extensionAllowed(ext, allowed) {
		return "", ErrExtensionNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// A timestamp alone collides for uploads landing in the same
	// second. A random suffix plus exclusive create keeps every stored
	// file intact.
	var dst *os.File
	var filePath string
	for attempt := 0; ; attempt++ {
		name := fmt.Sprintf("%s-%06d%s", time.Now().Format("20060102150405"), uploadRng.Intn(1000000), ext)
		filePath = filepath.Join(destDir, name)

		dst, err = os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			break
		}
		if !os.IsExist(err) || attempt >= 5 {
			return "", err
		}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// GetFileURL maps a stored path to the public URL under the /uploads
// static mount.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	p := filepath.ToSlash(filePath)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "uploads/")
	return "/uploads/" + p
}
