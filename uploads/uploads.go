package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Dir is the root folder for uploaded images. main.go overrides it from the
// UPLOADS_DIR environment variable before the server starts.
var Dir = "./uploads"

// SaveImage stores an uploaded file under Dir/<subdir> and returns the public
// path to keep on the record. Filenames are prefixed with a nanosecond
// timestamp so repeated uploads of the same file never collide.
func SaveImage(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	saveDir := filepath.Join(Dir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// RemoveImage deletes the file behind a stored public path, if any. A missing
// file is not an error; the record is the source of truth, not the disk.
func RemoveImage(publicPath string) {
	if publicPath == "" {
		return
	}
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	_ = os.Remove(filepath.Join(Dir, filepath.FromSlash(rel)))
}
