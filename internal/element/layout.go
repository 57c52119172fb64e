package element

import "github.com/uskr/wdclient/internal/wdevent"

// The kinds in this file are layout containers (spec.md §9 supplemented
// layout kinds + §4.6 menu/tree/roadmap families): they group children
// rather than carry their own data, so most fire no events. Where a
// container genuinely has a single interaction (TabStrip's tab
// selection, TreeNode's expand), that method lives alongside its
// struct.

// Tray is a collapsible grouping panel.
type Tray struct{ Base }

// TrayData is Tray's typed lsdata shape.
type TrayData struct {
	Expanded bool
	Title    string
}

// Data decodes this Tray's lsdata.
func (t *Tray) Data() (TrayData, error) {
	f, err := t.LSData()
	if err != nil {
		return TrayData{}, err
	}
	return TrayData{Expanded: f.Bool("0"), Title: f.String("1")}, nil
}

// ToggleExpand fires the Tray's Expand event, flipping its disclosure state.
func (t *Tray) ToggleExpand() (wdevent.Event, error) {
	return t.FireEvent("Expand", []wdevent.Param{t.idParam()})
}

// ScrollContainer clips and scrolls its child layout.
type ScrollContainer struct{ Base }

// ButtonRow lays out a horizontal strip of Button/Link children.
type ButtonRow struct{ Base }

// GridLayoutCell is one cell of a GridLayout, addressed by row/column.
type GridLayoutCell struct {
	Base
	Row, Column int
}

// PopupWindow is a modal/non-modal floating window container.
type PopupWindow struct{ Base }

// PopupWindowData is PopupWindow's typed lsdata shape.
type PopupWindowData struct {
	Title     string
	Closeable bool
}

// Data decodes this PopupWindow's lsdata.
func (p *PopupWindow) Data() (PopupWindowData, error) {
	f, err := p.LSData()
	if err != nil {
		return PopupWindowData{}, err
	}
	return PopupWindowData{Title: f.String("0"), Closeable: f.Bool("1")}, nil
}

// Close fires the PopupWindow's Close event.
func (p *PopupWindow) Close() (wdevent.Event, error) {
	return p.FireEvent("Close", []wdevent.Param{p.idParam()})
}

// Toolbar lays out a row of command items above content.
type Toolbar struct{ Base }

// Scrollbar is ScrollContainer's standalone scroll-position control,
// used when a table or tree manages its own viewport rather than
// delegating to a wrapping ScrollContainer.
type Scrollbar struct{ Base }

// SplitterContainer divides its area into resizable panes.
type SplitterContainer struct{ Base }

// Menu is a root menu bar/dropdown container.
type Menu struct{ Base }

// MenuItem is a selectable entry within a Menu.
type MenuItem struct{ Base }

// MenuItemData is MenuItem's typed lsdata shape.
type MenuItemData struct {
	Text    string
	Enabled bool
}

// Data decodes this MenuItem's lsdata.
func (m *MenuItem) Data() (MenuItemData, error) {
	f, err := m.LSData()
	if err != nil {
		return MenuItemData{}, err
	}
	return MenuItemData{Text: f.String("0"), Enabled: !f.Has("3") || f.Bool("3")}, nil
}

// Select fires the MenuItem's Select event.
func (m *MenuItem) Select() (wdevent.Event, error) {
	return m.FireEvent("Select", []wdevent.Param{m.idParam()})
}

// Tree is a hierarchical node container.
type Tree struct{ Base }

// TreeNode is one node within a Tree.
type TreeNode struct{ Base }

// TreeNodeData is TreeNode's typed lsdata shape.
type TreeNodeData struct {
	Text     string
	Expanded bool
}

// Data decodes this TreeNode's lsdata.
func (n *TreeNode) Data() (TreeNodeData, error) {
	f, err := n.LSData()
	if err != nil {
		return TreeNodeData{}, err
	}
	return TreeNodeData{Text: f.String("0"), Expanded: f.Bool("1")}, nil
}

// ToggleExpand fires the TreeNode's Expand event.
func (n *TreeNode) ToggleExpand() (wdevent.Event, error) {
	return n.FireEvent("Expand", []wdevent.Param{n.idParam()})
}

// Select fires the TreeNode's Select event.
func (n *TreeNode) Select() (wdevent.Event, error) {
	return n.FireEvent("Select", []wdevent.Param{n.idParam()})
}

// Roadmap is a linear step-progress container.
type Roadmap struct{ Base }

// RoadmapStep is one step within a Roadmap.
type RoadmapStep struct{ Base }

// RoadmapStepData is RoadmapStep's typed lsdata shape.
type RoadmapStepData struct {
	Text   string
	Active bool
}

// Data decodes this RoadmapStep's lsdata.
func (s *RoadmapStep) Data() (RoadmapStepData, error) {
	f, err := s.LSData()
	if err != nil {
		return RoadmapStepData{}, err
	}
	return RoadmapStepData{Text: f.String("0"), Active: f.Bool("1")}, nil
}

// Select fires the RoadmapStep's Select event, navigating to that step.
func (s *RoadmapStep) Select() (wdevent.Event, error) {
	return s.FireEvent("Select", []wdevent.Param{s.idParam()})
}
