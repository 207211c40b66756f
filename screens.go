package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/game"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelFill = color.NRGBA{A: 200}
	buttonBg  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Screens are the ebitenui overlays shown around play: the title menu, the
// loading card, game over and pause.
type Screens struct {
	face ebtext.Face

	menu     *ebitenui.UI
	loading  *ebitenui.UI
	gameOver *ebitenui.UI
	pause    *ebitenui.UI

	stage *widget.Text
	lives *widget.Text
	score *widget.Text
}

// NewScreens builds every overlay. onResume runs when the pause menu's
// Resume button is clicked.
func NewScreens(onResume func()) *Screens {
	s := &Screens{face: ebtext.NewGoXFace(basicfont.Face7x13)}

	s.menu = s.panel(s.label("PLATFORMER"), s.label("PRESS ENTER"))

	s.stage = s.label("WORLD 1-1")
	s.lives = s.label("x 3")
	s.loading = s.panel(s.stage, s.lives)

	s.score = s.label("SCORE 0")
	s.gameOver = s.panel(s.label("GAME OVER"), s.score)

	resume := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: imageui.NewNineSliceColor(buttonBg), Pressed: imageui.NewNineSliceColor(buttonBg)}),
		widget.ButtonOpts.Text("Resume", &s.face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onResume != nil {
				onResume()
			}
		}),
	)
	s.pause = s.panel(s.label("PAUSED"), resume)
	return s
}

func (s *Screens) label(text string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, &s.face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// panel centers children in a translucent box over the canvas.
func (s *Screens) panel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	box.AddChild(children...)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(box)
	return &ebitenui.UI{Container: root}
}

// Refresh copies run progress into the overlay labels.
func (s *Screens) Refresh(state *game.State) {
	s.stage.Label = fmt.Sprintf("WORLD %d-%d", state.World, state.Level)
	s.lives.Label = fmt.Sprintf("x %d", state.Lives)
	s.score.Label = fmt.Sprintf("SCORE %d", state.Score)
}

// For picks the overlay for a screen, or nil while playing unpaused.
func (s *Screens) For(screen game.Screen, paused bool) *ebitenui.UI {
	if paused {
		return s.pause
	}
	switch screen {
	case game.ScreenMenu:
		return s.menu
	case game.ScreenLoading:
		return s.loading
	case game.ScreenGameOver:
		return s.gameOver
	}
	return nil
}
