package ui

import (
	"bytes"
	"image/color"
	"log"
	"strings"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CreateWorldUI is the ebitenui form shown before a world is created.
type CreateWorldUI struct {
	UI *ebitenui.UI

	OnOpenSettings func()
	OnCreate       func(name string)
	OnGoBack       func()

	nameInput    *widget.TextInput
	summaryLabel *widget.Label
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewCreateWorldUI(name, summary string, onOpenSettings func(), onCreate func(name string), onGoBack func()) *CreateWorldUI {
	cui := &CreateWorldUI{
		OnOpenSettings: onOpenSettings,
		OnCreate:       onCreate,
		OnGoBack:       onGoBack,
	}
	cui.loadFonts()
	cui.buildUI()
	cui.nameInput.SetText(name)
	cui.SetSummary(summary)
	return cui
}

func (cui *CreateWorldUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	cui.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Form.TitleFontSize}
	cui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Form.NormalFontSize}
	cui.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.Form.SmallFontSize}
}

func (cui *CreateWorldUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Form.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CREATE WORLD", &cui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)
	contentContainer.AddChild(cui.buildWorldPanel())

	cui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: cfg.Form.StatusColor,
		}),
	)
	contentContainer.AddChild(cui.statusLabel)
	contentContainer.AddChild(cui.buildButtons())

	rootContainer.AddChild(contentContainer)

	cui.UI = &ebitenui.UI{Container: rootContainer}
}

func (cui *CreateWorldUI) buildWorldPanel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Form.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text("World Name:", &cui.normalFace, &widget.LabelColor{
			Idle: cfg.LightGray,
		}),
	)
	nameRow.AddChild(nameLabel)

	cui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Form.InputColor),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&cui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      cfg.Gray,
			Caret:         cfg.White,
			DisabledCaret: cfg.Gray,
		}),
		widget.TextInputOpts.Placeholder(cfg.Form.DefaultName),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
	)
	nameRow.AddChild(cui.nameInput)
	panel.AddChild(nameRow)

	cui.summaryLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: cfg.LightGray,
		}),
	)
	panel.AddChild(cui.summaryLabel)

	settingsBtn := cui.newButton("World Settings...", 180, cfg.Form.ButtonIdle, cfg.Form.ButtonHover, cfg.Form.ButtonPressed, func() {
		if cui.OnOpenSettings != nil {
			cui.OnOpenSettings()
		}
	})
	panel.AddChild(settingsBtn)

	return panel
}

func (cui *CreateWorldUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := cui.newButton("Back", 100, cfg.Form.ButtonIdle, cfg.Form.ButtonHover, cfg.Form.ButtonPressed, func() {
		if cui.OnGoBack != nil {
			cui.OnGoBack()
		}
	})
	container.AddChild(backButton)

	createButton := cui.newButton("Create World", 160, cfg.Form.AccentIdle, cfg.Form.AccentHover, cfg.Form.AccentPressed, func() {
		if cui.OnCreate != nil {
			cui.OnCreate(cui.WorldName())
		}
	})
	container.AddChild(createButton)

	return container
}

func (cui *CreateWorldUI) newButton(label string, minWidth int, idle, hover, pressed color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(pressed),
		}),
		widget.ButtonOpts.Text(label, &cui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.BrightOrange,
			Pressed: cfg.LightGray,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// WorldName returns the typed name, or the default when blank.
func (cui *CreateWorldUI) WorldName() string {
	name := strings.TrimSpace(cui.nameInput.GetText())
	if name == "" {
		return cfg.Form.DefaultName
	}
	return name
}

func (cui *CreateWorldUI) SetSummary(summary string) {
	if cui.summaryLabel != nil {
		cui.summaryLabel.Label = summary
	}
}

func (cui *CreateWorldUI) SetStatus(msg string) {
	if cui.statusLabel != nil {
		cui.statusLabel.Label = msg
	}
}

func (cui *CreateWorldUI) Update() {
	cui.UI.Update()
}

func (cui *CreateWorldUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}
