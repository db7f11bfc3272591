// internal/assets/wheels.go
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format

	"wheel-overlay/internal/config"
	"wheel-overlay/internal/logging"
)

var wheelExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// Catalog — список изображений руля в <base>/wheels.
type Catalog struct {
	dir   string
	names []string
	log   zerolog.Logger
}

// NewCatalog сканирует base/wheels. Если каталога нет, список пуст.
func NewCatalog(base string) *Catalog {
	c := &Catalog{
		dir: filepath.Join(base, config.WheelsDir),
		log: logging.Module("assets"),
	}
	c.Refresh()
	return c
}

// Refresh перечитывает каталог колёс.
func (c *Catalog) Refresh() {
	c.names = c.names[:0]
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		c.log.Warn().Err(err).Str("dir", c.dir).Msg("cannot read wheels directory")
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(wheelExts, ext) {
			c.names = append(c.names, e.Name())
		}
	}
	slices.Sort(c.names)
	c.log.Debug().Int("count", len(c.names)).Str("dir", c.dir).Msg("wheel catalog loaded")
}

// Names возвращает отсортированные имена файлов.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Index возвращает позицию name в списке или -1.
func (c *Catalog) Index(name string) int { return slices.Index(c.names, name) }

// Path возвращает полный путь к файлу руля.
func (c *Catalog) Path(name string) string { return filepath.Join(c.dir, name) }

// Load декодирует руль по имени файла.
func (c *Catalog) Load(name string) (image.Image, error) {
	return LoadImage(c.Path(name))
}

// LoadOrBlank декодирует руль, при ошибке возвращает пустое изображение:
// оверлей остаётся пустым, программа продолжает работать.
func (c *Catalog) LoadOrBlank(name string) image.Image {
	img, err := c.Load(name)
	if err != nil {
		c.log.Warn().Err(err).Str("wheel", name).Msg("wheel image unavailable, showing blank overlay")
		return image.NewRGBA(image.Rectangle{})
	}
	return img
}

// LoadImage читает и декодирует файл изображения.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image '%s': %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", path, err)
	}
	return img, nil
}
