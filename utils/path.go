package utils

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// ResizedSuffix is appended to the base name of the source file
// when no destination is provided.
const ResizedSuffix = "_resized"

// ResizedPath derives the destination path from the source path by adding
// ResizedSuffix between the file name and its extension, keeping the folder.
// For example photos/cat.jpg becomes photos/cat_resized.jpg.
func ResizedPath(src string) string {
	dir, file := filepath.Split(src)
	ext := filepath.Ext(file)
	name := strings.TrimSuffix(file, ext)

	return dir + name + ResizedSuffix + ext
}

// IsValidExtension checks for the supported extensions.
func IsValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}
