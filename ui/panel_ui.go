package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/nicoguyon/vibefighter-sub001/pose"
	"github.com/nicoguyon/vibefighter-sub001/posecfg"
	"github.com/nicoguyon/vibefighter-sub001/rigmath"
	"golang.org/x/image/font/gofont/goregular"
)

// nudgeStep is the degree increment applied by the pose edit buttons.
const nudgeStep = 10

// panelCommands fixes the button order in the control panel.
var panelCommands = []posecfg.Command{
	posecfg.CmdStance,
	posecfg.CmdReset,
	posecfg.CmdWalk,
	posecfg.CmdPunchLeft,
	posecfg.CmdPunchRight,
	posecfg.CmdBlock,
	posecfg.CmdDuck,
	posecfg.CmdDuckKick,
	posecfg.CmdHello,
	posecfg.CmdArmsCrossed,
	posecfg.CmdBow,
	posecfg.CmdFall,
}

// ControlPanel holds the ebitenui interface for driving the rig: one
// button per pose command plus a direct bone editor that is live only
// while the controller reports the rig as editable.
type ControlPanel struct {
	UI   *ebitenui.UI
	ctrl *pose.Controller

	// Widget references for updates
	statusLabel *widget.Label
	boneButton  *widget.Button
	axisLabels  [3]*widget.Label

	// Bone editor state
	boneIndex int
	edits     map[string]rigmath.Vec3 // euler degrees entered via nudges

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewControlPanel creates the command and pose edit panel for one controller.
func NewControlPanel(ctrl *pose.Controller) *ControlPanel {
	cp := &ControlPanel{
		ctrl:  ctrl,
		edits: map[string]rigmath.Vec3{},
	}

	cp.loadFonts()
	cp.buildUI()

	return cp
}

func (cp *ControlPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	cp.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	cp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	cp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (cp *ControlPanel) buildUI() {
	// Root container with AnchorLayout, panel docked to the right edge
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("POSE COMMANDS", &cp.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(cp.buildCommandRows())
	contentContainer.AddChild(cp.buildBoneEditor())

	cp.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(cp.statusLabel)

	rootContainer.AddChild(contentContainer)

	cp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildCommandRows lays the command buttons out two per row.
func (cp *ControlPanel) buildCommandRows() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	for i := 0; i < len(panelCommands); i += 2 {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(2),
			)),
		)
		row.AddChild(cp.commandButton(panelCommands[i]))
		if i+1 < len(panelCommands) {
			row.AddChild(cp.commandButton(panelCommands[i+1]))
		}
		container.AddChild(row)
	}

	return container
}

func (cp *ControlPanel) commandButton(cmd posecfg.Command) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(92, 20),
		),
		widget.ButtonOpts.Image(cp.buttonImage()),
		widget.ButtonOpts.Text(cmd.String(), &cp.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cp.ctrl.HandleCommand(cmd)
		}),
	)
}

func (cp *ControlPanel) buildBoneEditor() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	editTitle := widget.NewLabel(
		widget.LabelOpts.Text("POSE EDIT", &cp.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(editTitle)

	// Bone cycle button - use initial value from the bone list
	cp.boneButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(186, 20),
		),
		widget.ButtonOpts.Image(cp.buttonImage()),
		widget.ButtonOpts.Text(posecfg.AllBones[0], &cp.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{180, 220, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cp.boneIndex = (cp.boneIndex + 1) % len(posecfg.AllBones)
			cp.UpdateUI()
		}),
	)
	container.AddChild(cp.boneButton)

	axisNames := [3]string{"X", "Y", "Z"}
	for axis := 0; axis < 3; axis++ {
		container.AddChild(cp.buildAxisRow(axis, axisNames[axis]))
	}

	return container
}

func (cp *ControlPanel) buildAxisRow(axis int, name string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(cp.nudgeButton("-", axis, -nudgeStep))

	cp.axisLabels[axis] = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%s: 0", name), &cp.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 210, 255},
		}),
	)
	row.AddChild(cp.axisLabels[axis])

	row.AddChild(cp.nudgeButton("+", axis, nudgeStep))

	return row
}

func (cp *ControlPanel) nudgeButton(label string, axis int, step float32) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(24, 18),
		),
		widget.ButtonOpts.Image(cp.buttonImage()),
		widget.ButtonOpts.Text(label, &cp.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cp.nudgeBone(axis, step)
		}),
	)
}

// nudgeBone rotates the selected bone directly. Direct edits are only
// allowed while no clip owns the rig, so playback never fights the user.
func (cp *ControlPanel) nudgeBone(axis int, step float32) {
	if !cp.ctrl.Editable() {
		return
	}

	name := posecfg.AllBones[cp.boneIndex]
	sk := cp.ctrl.Mixer().Skeleton()
	bone := sk.Bone(name)
	if bone == nil {
		return
	}

	e := cp.edits[name]
	switch axis {
	case 0:
		e.X += step
	case 1:
		e.Y += step
	case 2:
		e.Z += step
	}
	cp.edits[name] = e

	bone.Local.Rotation = rigmath.FromEulerDeg(e.X, e.Y, e.Z, rigmath.OrderXYZ)
	cp.UpdateUI()
}

// UpdateUI refreshes the widgets that show mutable state.
func (cp *ControlPanel) UpdateUI() {
	name := posecfg.AllBones[cp.boneIndex]
	if textWidget := cp.boneButton.Text(); textWidget != nil {
		textWidget.Label = name
	}

	e := cp.edits[name]
	axisNames := [3]string{"X", "Y", "Z"}
	values := [3]float32{e.X, e.Y, e.Z}
	for axis := 0; axis < 3; axis++ {
		cp.axisLabels[axis].Label = fmt.Sprintf("%s: %.0f", axisNames[axis], values[axis])
	}

	if cp.ctrl.Editable() {
		cp.statusLabel.Label = "rig editable"
	} else {
		cp.statusLabel.Label = "playback active"
	}
}

func (cp *ControlPanel) buttonImage() *widget.ButtonImage {
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

// Update steps the ebitenui widget tree.
func (cp *ControlPanel) Update() {
	cp.UI.Update()
	// Refresh labels only after the first Update has validated the widgets
	if !cp.initialized {
		cp.initialized = true
		return
	}
	cp.UpdateUI()
}

// Draw renders the panel on top of the scene.
func (cp *ControlPanel) Draw(screen *ebiten.Image) {
	cp.UI.Draw(screen)
}
