// Package element implements the ~40-kind widget registry from spec.md
// §2 component I and §4.6: for each kind, a wire control id, a typed
// lsdata shape, and the event constructors that kind can fire.
package element

// Kind identifies a widget kind independent of its wire representation.
// The source language's enum-dispatch/trait-object pattern becomes a
// tagged variant here: Kind selects which decoder and event-constructor
// set applies to a given DOM node (spec.md §9 Design Notes).
type Kind string

const (
	KindButton            Kind = "Button"
	KindLink              Kind = "Link"
	KindComboBox          Kind = "ComboBox"
	KindCheckBox          Kind = "CheckBox"
	KindInputField        Kind = "InputField"
	KindTextView           Kind = "TextView"
	KindCaption           Kind = "Caption"
	KindLabel             Kind = "Label"
	KindTabStrip          Kind = "TabStrip"
	KindTray              Kind = "Tray"
	KindScrollContainer   Kind = "ScrollContainer"
	KindScrollbar         Kind = "Scrollbar"
	KindGridLayoutCell    Kind = "GridLayoutCell"
	KindPopupWindow       Kind = "PopupWindow"
	KindButtonRow         Kind = "ButtonRow"
	KindForm              Kind = "Form"
	KindClientInspector   Kind = "ClientInspector"
	KindLoadingPlaceholder Kind = "LoadingPlaceholder"
	KindListBox           Kind = "ListBox"
	KindListBoxActionItem Kind = "ListBoxActionItem"
	KindSapTable          Kind = "SapTable"
	KindFileUpload        Kind = "FileUpload"
	KindFileDownload      Kind = "FileDownload"
	KindRadioButton       Kind = "RadioButton"
	KindCalendar          Kind = "Calendar"
	KindDateNavigator     Kind = "DateNavigator"
	KindImage             Kind = "Image"
	KindIcon              Kind = "Icon"
	KindMenu              Kind = "Menu"
	KindMenuItem          Kind = "MenuItem"
	KindToolbar           Kind = "Toolbar"
	KindFormattedTextView Kind = "FormattedTextView"
	KindTree              Kind = "Tree"
	KindTreeNode          Kind = "TreeNode"
	KindProgressIndicator Kind = "ProgressIndicator"
	KindRoadmap           Kind = "Roadmap"
	KindRoadmapStep       Kind = "RoadmapStep"
	KindSplitterContainer Kind = "SplitterContainer"
	// KindCustom is the synthetic element (spec.md §9) the bootstrap
	// handshake fires ClientInfos against. It never exists in the DOM.
	KindCustom Kind = "Custom"
	// KindUnknown is the fallback for any ct not in wireControlIDs
	// (spec.md §4.6 "Unknown elements").
	KindUnknown Kind = "Unknown"
)

// wireControlIDs maps the framework's `ct` attribute value to the Kind it
// selects. Declared as the single source of truth that the parser and
// the SapTable cell reader consult through KindForCT; New in
// registry.go switches on the Kind it is given and does not read it.
var wireControlIDs = map[string]Kind{
	"B":        KindButton,
	"L":        KindLink,
	"CB":       KindComboBox,
	"CHB":      KindCheckBox,
	"I":        KindInputField,
	"TV":       KindTextView,
	"CAP":      KindCaption,
	"LB5":      KindLabel,
	"TS":       KindTabStrip,
	"TRA":      KindTray,
	"SC":       KindScrollContainer,
	"SCB":      KindScrollbar,
	"GLC":      KindGridLayoutCell,
	"PW":       KindPopupWindow,
	"BR":       KindButtonRow,
	"FORM":     KindForm,
	"CI":       KindClientInspector,
	"LDP":      KindLoadingPlaceholder,
	"LIB":      KindListBox,
	"LIB_AI":   KindListBoxActionItem,
	"ST":       KindSapTable,
	"FU":       KindFileUpload,
	"FD":       KindFileDownload,
	"RB":       KindRadioButton,
	"CAL":      KindCalendar,
	"DTN":      KindDateNavigator,
	"IMG":      KindImage,
	"ICN":      KindIcon,
	"MNU":      KindMenu,
	"MNI":      KindMenuItem,
	"TB":       KindToolbar,
	"FTV":      KindFormattedTextView,
	"TR":       KindTree,
	"TRN":      KindTreeNode,
	"PI":       KindProgressIndicator,
	"RM":       KindRoadmap,
	"RMS":      KindRoadmapStep,
	"SPC":      KindSplitterContainer,
	"CUSTOM":   KindCustom,
}

// KindForCT returns the Kind registered for a wire `ct` value, and
// whether it was found. Callers that get false should fall back to
// KindUnknown rather than failing (spec.md §4.6).
func KindForCT(ct string) (Kind, bool) {
	k, ok := wireControlIDs[ct]
	return k, ok
}

// WireName returns the element name a Kind uses when it fires events
// (e.g. KindButton -> "Button"), which for every registered kind today
// is identical to the Kind string itself, but is kept as its own
// function since KindCustom's wire name ("Custom") and the literal
// "Form" event-target are spec.md §3 special cases worth naming
// explicitly rather than assuming Kind IS the wire name everywhere a
// future kind is added.
func WireName(k Kind) string {
	return string(k)
}
