package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadDir is where product and category images land on disk. The /uploads
// static route in main serves it back out.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

func validImageExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// saveUploadedImage stores an uploaded image under UploadDir()/<subdir> and
// returns its public URL path. File names are prefixed with a nanosecond
// timestamp so repeated uploads never collide.
func saveUploadedImage(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	if !validImageExtension(ext) {
		return "", fmt.Errorf("invalid image extension %q", ext)
	}

	saveDir := filepath.Join(UploadDir(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}
