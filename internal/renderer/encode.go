package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// EncodePNG writes img as a maximally compressed PNG.
// An opaque *image.RGBA is stored as 8-bit truecolour without an alpha channel.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// SavePNG writes img to outputPath, creating parent directories as needed
func SavePNG(outputPath string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := EncodePNG(outFile, img); err != nil {
		outFile.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}

	return outFile.Close()
}
