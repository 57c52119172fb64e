package element

import "github.com/PuerkitoBio/goquery"

// New builds the typed Element for a resolved DOM node, dispatching on
// the Kind internal/parser already determined from the node's `ct`
// attribute. Unknown is used both for an explicit KindUnknown and as
// the default branch, so a future wire `ct` added to wireControlIDs
// without a matching case here still degrades gracefully instead of
// panicking.
func New(k Kind, ct, id string, node *goquery.Selection) Element {
	base := NewBase(id, k, node)
	switch k {
	case KindButton:
		return &Button{Base: base}
	case KindLink:
		return &Link{Base: base}
	case KindComboBox:
		return &ComboBox{Base: base}
	case KindCheckBox:
		return &CheckBox{Base: base}
	case KindRadioButton:
		return &RadioButton{Base: base}
	case KindInputField:
		return &InputField{Base: base}
	case KindTextView:
		return &TextView{Base: base}
	case KindCaption:
		return &Caption{Base: base}
	case KindLabel:
		return &Label{Base: base}
	case KindFormattedTextView:
		return &FormattedTextView{Base: base}
	case KindImage:
		return &Image{Base: base}
	case KindIcon:
		return &Icon{Base: base}
	case KindProgressIndicator:
		return &ProgressIndicator{Base: base}
	case KindTabStrip:
		return &TabStrip{Base: base}
	case KindTray:
		return &Tray{Base: base}
	case KindScrollContainer:
		return &ScrollContainer{Base: base}
	case KindScrollbar:
		return &Scrollbar{Base: base}
	case KindButtonRow:
		return &ButtonRow{Base: base}
	case KindGridLayoutCell:
		return &GridLayoutCell{Base: base}
	case KindPopupWindow:
		return &PopupWindow{Base: base}
	case KindToolbar:
		return &Toolbar{Base: base}
	case KindSplitterContainer:
		return &SplitterContainer{Base: base}
	case KindMenu:
		return &Menu{Base: base}
	case KindMenuItem:
		return &MenuItem{Base: base}
	case KindTree:
		return &Tree{Base: base}
	case KindTreeNode:
		return &TreeNode{Base: base}
	case KindRoadmap:
		return &Roadmap{Base: base}
	case KindRoadmapStep:
		return &RoadmapStep{Base: base}
	case KindForm:
		return &Form{Base: base}
	case KindClientInspector:
		return &ClientInspector{Base: base}
	case KindLoadingPlaceholder:
		return &LoadingPlaceholder{Base: base}
	case KindListBox:
		return &ListBox{Base: base}
	case KindListBoxActionItem:
		return &ListBoxActionItem{Base: base}
	case KindFileUpload:
		return &FileUpload{Base: base}
	case KindFileDownload:
		return &FileDownload{Base: base}
	case KindCalendar:
		return &Calendar{Base: base}
	case KindDateNavigator:
		return &DateNavigator{Base: base}
	default:
		return &Unknown{Base: base, CT: ct}
	}
}
