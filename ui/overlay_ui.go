// Package ui builds the ebitenui overlays shown between levels.
package ui

import (
	"image/color"

	"github.com/automoto/tilerun/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Button is one overlay choice.
type Button struct {
	Label     string
	OnClicked func()
}

// OverlayUI is a centered panel with a title, a detail line and buttons.
type OverlayUI struct {
	UI *ebitenui.UI

	detailLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewOverlayUI builds the panel. Buttons are laid out top to bottom.
func NewOverlayUI(title, detail string, buttons ...Button) *OverlayUI {
	o := &OverlayUI{
		titleFace:  fonts.Title.Get(),
		normalFace: fonts.Body.Get(),
	}
	o.buildUI(title, detail, buttons)
	return o
}

// SetDetail replaces the line under the title.
func (o *OverlayUI) SetDetail(detail string) {
	o.detailLabel.Label = detail
}

func (o *OverlayUI) Update() {
	o.UI.Update()
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}

func (o *OverlayUI) buildUI(title, detail string, buttons []Button) {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &o.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	o.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text(detail, &o.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(o.detailLabel)

	for _, b := range buttons {
		onClicked := b.OnClicked
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 24), center),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(b.Label, &o.normalFace, &widget.ButtonTextColor{
				Idle: color.RGBA{255, 255, 255, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClicked != nil {
					onClicked()
				}
			}),
		))
	}

	rootContainer.AddChild(panel)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
