package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestFirstSheet(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		want    string
		wantErr error
	}{
		{
			name: "missing_dir",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "nope")
			},
			wantErr: ErrMissingDir,
		},
		{
			name: "path_is_file",
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "assets")
				if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
				return p
			},
			wantErr: ErrMissingDir,
		},
		{
			name: "empty_dir",
			setup: func(t *testing.T, dir string) string {
				return dir
			},
			wantErr: ErrNoSheets,
		},
		{
			name: "only_other_files",
			setup: func(t *testing.T, dir string) string {
				if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
				if err := os.Mkdir(filepath.Join(dir, "dir.png"), 0o755); err != nil {
					t.Fatalf("mkdir: %v", err)
				}
				return dir
			},
			wantErr: ErrNoSheets,
		},
		{
			name: "single_png",
			setup: func(t *testing.T, dir string) string {
				writePNG(t, filepath.Join(dir, "idle.png"), 4, 4)
				return dir
			},
			want: "idle.png",
		},
		{
			name: "upper_case_extension",
			setup: func(t *testing.T, dir string) string {
				writePNG(t, filepath.Join(dir, "IDLE.PNG"), 4, 4)
				return dir
			},
			want: "IDLE.PNG",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := c.setup(t, t.TempDir())
			got, err := FirstSheet(dir)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filepath.Base(got) != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	if ErrMissingDir.Error() != "Missing /assets folder" {
		t.Fatalf("unexpected text %q", ErrMissingDir.Error())
	}
	if ErrNoSheets.Error() != "No PNGs in /assets" {
		t.Fatalf("unexpected text %q", ErrNoSheets.Error())
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "sheet.png")
	writePNG(t, good, 700, 350)
	img, err := LoadImage(good)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 700 || img.Bounds().Dy() != 350 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadImage(bad); err == nil {
		t.Fatalf("expected decode error")
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestDir(t *testing.T) {
	dir, err := Dir()
	if err != nil {
		t.Fatalf("dir: %v", err)
	}
	if filepath.Base(dir) != DirName {
		t.Fatalf("expected %s suffix, got %s", DirName, dir)
	}
}
