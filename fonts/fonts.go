// Package fonts holds the text faces shared by the HUD and the overlay UI.
package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Body  FontName = "body"
	Title FontName = "title"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]text.Face{}
	loadOnce sync.Once
)

// Load builds every face. It is safe to call more than once.
func Load() {
	loadOnce.Do(func() {
		fonts[HUD] = text.NewGoXFace(basicfont.Face7x13)

		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		fonts[Body] = &text.GoTextFace{Source: source, Size: 12}
		fonts[Title] = &text.GoTextFace{Source: source, Size: 24}
	})
}

func getFont(name FontName) text.Face {
	Load()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
