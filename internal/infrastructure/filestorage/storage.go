package filestorage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kurochkinivan/equipment_reporter/internal/domain"
)

const (
	datasetsDir     = "datasets"
	defaultName     = "dataset.csv"
	suffixLength    = 7
	maxSaveAttempts = 10
	dirPermissions  = 0o755
	filePermissions = 0o644

	// maxNameBytes leaves room for the collision suffix within both the
	// 255 byte file name limit and the VARCHAR(255) file column.
	maxNameBytes = 200
	maxExtBytes  = 16
)

var invalidNameChars = regexp.MustCompile(`[^-\p{L}\p{N}_.]`)

var ErrInvalidPath = errors.New("invalid storage path")

// Storage keeps uploaded files under a media root. Paths handed out and
// accepted are slash separated and relative to the root: datasets/pumps.csv.
type Storage struct {
	root string
}

func New(root string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Join(root, datasetsDir), dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	return &Storage{root: root}, nil
}

func (s *Storage) Root() string {
	return s.root
}

// Save writes r under datasets/ and returns the stored path. A name that is
// already taken gets a random suffix before the extension.
func (s *Storage) Save(name string, r io.Reader) (string, error) {
	valid := ValidName(name)
	ext := path.Ext(valid)
	stem := strings.TrimSuffix(valid, ext)

	candidate := valid
	for range maxSaveAttempts {
		rel := path.Join(datasetsDir, candidate)

		f, err := os.OpenFile(s.abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
		if errors.Is(err, fs.ErrExist) {
			candidate = stem + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength] + ext
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %q: %w", rel, err)
		}

		if _, err := io.Copy(f, r); err != nil {
			return "", errors.Join(
				fmt.Errorf("failed to write %q: %w", rel, err),
				f.Close(),
				os.Remove(f.Name()),
			)
		}

		if err := f.Close(); err != nil {
			return "", errors.Join(fmt.Errorf("failed to close %q: %w", rel, err), os.Remove(f.Name()))
		}

		return rel, nil
	}

	return "", fmt.Errorf("failed to find a free name for %q after %d attempts", valid, maxSaveAttempts)
}

func (s *Storage) Open(rel string) (io.ReadCloser, error) {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}

	f, err := os.Open(s.abs(rel))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to open %q: %w", rel, domain.ErrFileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", rel, err)
	}

	return f, nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (s *Storage) Remove(rel string) error {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, rel)
	}

	if err := os.Remove(s.abs(rel)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", rel, err)
	}

	return nil
}

func (s *Storage) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// ValidName turns an uploaded file name into a safe base name:
// "my pumps (1).csv" -> "my_pumps_1.csv".
func ValidName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = invalidNameChars.ReplaceAllString(name, "")

	if name == "" || name == "." || name == ".." {
		return defaultName
	}

	return truncateName(name)
}

// truncateName shortens the stem of name to maxNameBytes on a rune boundary,
// keeping a short extension.
func truncateName(name string) string {
	if len(name) <= maxNameBytes {
		return name
	}

	ext := path.Ext(name)
	if len(ext) > maxExtBytes {
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)

	n := maxNameBytes - len(ext)
	for n > 0 && !utf8.RuneStart(stem[n]) {
		n--
	}

	return stem[:n] + ext
}
