// Package qrcode renders the per-table QR codes guests scan to open the menu.
package qrcode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type Generator struct {
	BaseURL string
	Dir     string
	Size    int
}

func NewGenerator(baseURL, dir string) *Generator {
	return &Generator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Dir:     dir,
		Size:    defaultSize,
	}
}

// MenuURL is the address encoded in the table's QR code.
func (g *Generator) MenuURL(tableID uint) string {
	return fmt.Sprintf("%s/menu/%d/", g.BaseURL, tableID)
}

// PNG renders the QR code for the table menu.
func (g *Generator) PNG(tableID uint) ([]byte, error) {
	png, err := goqrcode.Encode(g.MenuURL(tableID), goqrcode.Medium, g.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// WriteFile stores the PNG as qr-<number>.png under Dir and returns its path.
func (g *Generator) WriteFile(tableID, number uint) (string, error) {
	png, err := g.PNG(tableID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create QR code directory: %w", err)
	}
	path := filepath.Join(g.Dir, fmt.Sprintf("qr-%d.png", number))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return path, nil
}
