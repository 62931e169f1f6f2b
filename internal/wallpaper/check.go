// Package wallpaper provides validation for configured wallpaper images.
package wallpaper

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Check verifies that path points to an image the desktop can display.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF.
func Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("wallpaper not found: %s", path)
		}
		return fmt.Errorf("failed to stat wallpaper: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("wallpaper is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - user-configured wallpaper path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open wallpaper: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("failed to decode wallpaper %s: %w", path, err)
	}
	return nil
}
