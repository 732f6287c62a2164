package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var imageDataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.+)$`)

// DecodeImageDataURI splits data:image/<ext>;base64,<payload> into the
// extension and the decoded bytes.
func DecodeImageDataURI(raw string) (string, []byte, error) {
	matches := imageDataURIPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return "", nil, newError(ErrValidation, "image must be a base64 encoded data uri")
	}

	payload, err := base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return "", nil, newError(ErrValidation, "image payload is not valid base64")
	}
	if !strings.HasPrefix(mimetype.Detect(payload).String(), "image/") {
		return "", nil, newError(ErrValidation, "image payload is not an image")
	}

	return strings.ToLower(matches[1]), payload, nil
}

// SaveRecipeImage stores the decoded image under the media directory and
// returns the public url of the file.
func SaveRecipeImage(raw string) (string, error) {
	ext, payload, err := DecodeImageDataURI(raw)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	dir := filepath.Join(viper.GetString("media.path"), "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to prepare media directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), payload, 0o644); err != nil {
		return "", fmt.Errorf("unable to save image: %v", err)
	}

	return strings.TrimSuffix(viper.GetString("media.url_prefix"), "/") + "/recipes/" + name, nil
}

func DeleteMediaFile(url string) {
	prefix := strings.TrimSuffix(viper.GetString("media.url_prefix"), "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return
	}

	path := filepath.Join(viper.GetString("media.path"), filepath.FromSlash(strings.TrimPrefix(url, prefix)))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("Unable to delete media file...")
	}
}
