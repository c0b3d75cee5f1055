// internal/render/font.go
package render

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace парсит встроенный Go Regular. Если не вышло, возвращает
// растровый basicfont, чтобы HUD всё равно рисовался.
func LoadFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Failed to parse font, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to create font face, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	return face
}
