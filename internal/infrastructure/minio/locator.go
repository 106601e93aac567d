package minio

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"memes/pkg/utils"
)

var (
	errMalformedLocator = errors.New("malformed locator")
	errForeignBucket    = errors.New("locator belongs to another bucket")
)

// buildLocator returns <publicURL>/<bucket>/<object>.
func buildLocator(publicURL, bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", publicURL, url.PathEscape(bucket), url.PathEscape(object))
}

// parseLocator splits a locator back into bucket and object name.
func parseLocator(locator string) (string, string, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", errMalformedLocator, err.Error())
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return "", "", fmt.Errorf("%w: %q", errMalformedLocator, locator)
	}

	return segments[len(segments)-2], segments[len(segments)-1], nil
}

// objectIn returns the object name of a locator that points into bucket.
func objectIn(locator, bucket string) (string, error) {
	got, name, err := parseLocator(locator)
	if err != nil {
		return "", err
	}

	if got != bucket {
		return "", fmt.Errorf("%w: %q", errForeignBucket, got)
	}

	return name, nil
}

// objectName prefixes the sanitized suggested name with a random id so two
// uploads of the same file never collide.
func objectName(suggestedName, contentType string) string {
	name := sanitizeName(suggestedName)
	if name == "" {
		name = "image" + utils.GetExtensionFromMimeType(contentType)
	}

	return uuid.New().String() + "_" + name
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code

	return code == "NoSuchKey" || code == "NoSuchBucket"
}
