package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// AllowedImageTypes is the MIME allowlist for uploaded files.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// GenerateUploadName returns a collision-resistant filename for an upload:
// unix-nano timestamp plus a random hex suffix, keeping the original
// extension when it matches the declared content type.
func GenerateUploadName(originalName, contentType string) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || ext == "." {
		ext = AllowedImageTypes[contentType]
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), ext), nil
}
