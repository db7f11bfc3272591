// internal/assets/paths.go
package assets

import (
	"os"
	"path/filepath"

	"wheel-overlay/internal/config"
)

// ResolveBase выбирает каталог с wheels/ один раз при запуске. Порядок:
// явный assets_dir, каталог исполняемого файла (собранная версия), затем
// рабочий каталог (запуск при разработке).
func ResolveBase(configured string) string {
	if configured != "" {
		return configured
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if isDir(filepath.Join(dir, config.WheelsDir)) {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
