// Package panels provides UI panels for the application.
package panels

import (
	"engrave-studio/internal/app"
	"engrave-studio/internal/gen"
	"engrave-studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.EditorCanvas
	container *container.AppTabs

	designPanel *DesignPanel
	toolsPanel  *ToolsPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, ec *canvas.EditorCanvas, generator gen.Generator) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: ec,
	}

	sp.designPanel = NewDesignPanel(state, ec, generator)
	sp.toolsPanel = NewToolsPanel(ec)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Design", sp.designPanel.Container()),
		container.NewTabItem("Tools", sp.toolsPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow provides the parent window for dialogs.
func (sp *SidePanel) SetWindow(win fyne.Window) {
	sp.designPanel.SetWindow(win)
}
