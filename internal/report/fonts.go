package report

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Noto Sans Arabic, the family the original document embeds.
const (
	RegularFontFile = "NotoSansArabic-Regular.ttf"
	BoldFontFile    = "NotoSansArabic-Bold.ttf"

	regularFontURL = "https://github.com/googlefonts/noto-fonts/raw/main/hinted/ttf/NotoSansArabic/NotoSansArabic-Regular.ttf"
	boldFontURL    = "https://github.com/googlefonts/noto-fonts/raw/main/hinted/ttf/NotoSansArabic/NotoSansArabic-Bold.ttf"
)

// FontRegistry locates the Arabic TTF files the renderer embeds.
// Missing files can be fetched once with Ensure; rendering falls back
// to core fonts when they stay unavailable.
type FontRegistry struct {
	dir    string
	client *http.Client
}

func NewFontRegistry(dir string) *FontRegistry {
	return &FontRegistry{
		dir: dir,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Dir returns the directory the registry reads from.
func (f *FontRegistry) Dir() string {
	return f.dir
}

// Ensure downloads any missing font file into the registry directory.
func (f *FontRegistry) Ensure(ctx context.Context) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create fonts dir: %w", err)
	}

	fonts := map[string]string{
		RegularFontFile: regularFontURL,
		BoldFontFile:    boldFontURL,
	}

	for file, url := range fonts {
		path := filepath.Join(f.dir, file)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := f.download(ctx, url, path); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", file, err)
		}
	}
	return nil
}

func (f *FontRegistry) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read font data: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Load reads the font files. When only the regular weight exists it
// serves for bold as well; ok is false when no usable file is present.
func (f *FontRegistry) Load() (regular, bold []byte, ok bool) {
	regular, err := os.ReadFile(filepath.Join(f.dir, RegularFontFile))
	if err != nil || !validTrueType(regular) {
		return nil, nil, false
	}

	bold, err = os.ReadFile(filepath.Join(f.dir, BoldFontFile))
	if err != nil || !validTrueType(bold) {
		bold = regular
	}
	return regular, bold, true
}

// validTrueType checks the sfnt magic so a truncated download never
// reaches the embedder.
func validTrueType(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	tag := string(data[:4])
	return tag == "\x00\x01\x00\x00" || tag == "true"
}

// Available reports whether the regular weight is on disk.
func (f *FontRegistry) Available() bool {
	_, _, ok := f.Load()
	return ok
}
