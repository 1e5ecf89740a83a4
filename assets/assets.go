package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the folder, next to the executable, that holds the sprite sheet.
const DirName = "assets"

var (
	ErrMissingDir = errors.New("Missing /assets folder")
	ErrNoSheets   = errors.New("No PNGs in /assets")
)

// Dir returns the assets folder that sits beside the running executable.
func Dir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("assets: resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DirName), nil
}

// FirstSheet returns the path of the first PNG in dir. Entries are taken in
// the order the filesystem reports them, which is platform dependent when
// more than one PNG is present.
func FirstSheet(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", ErrMissingDir
	}

	f, err := os.Open(dir)
	if err != nil {
		return "", ErrMissingDir
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return "", fmt.Errorf("assets: read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isSheetFile(entry.Name()) {
			continue
		}
		return filepath.Join(dir, entry.Name()), nil
	}
	return "", ErrNoSheets
}

// LoadImage decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func isSheetFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
