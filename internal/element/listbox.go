package element

import "github.com/uskr/wdclient/internal/wdevent"

// ListBox is a multi/single-select list widget distinct from ComboBox
// in that its options render as always-visible rows, each addressable
// as its own ListBoxActionItem child (spec.md §4.6).
type ListBox struct {
	Base
}

// ListBoxItem is one row: key, displayed text, and selection state.
type ListBoxItem struct {
	Key      string
	Value    string
	Selected bool
}

// ListBoxData is ListBox's typed lsdata shape.
type ListBoxData struct {
	Items       []ListBoxItem
	MultiSelect bool
}

// Data decodes this ListBox's lsdata.
func (l *ListBox) Data() (ListBoxData, error) {
	f, err := l.LSData()
	if err != nil {
		return ListBoxData{}, err
	}
	return ListBoxData{
		Items:       parseListBoxItems(f.String("0"), f.String("1")),
		MultiSelect: f.Bool("2"),
	}, nil
}

func parseListBoxItems(raw, selectedKeys string) []ListBoxItem {
	selected := map[string]bool{}
	start := 0
	for i := 0; i <= len(selectedKeys); i++ {
		if i == len(selectedKeys) || selectedKeys[i] == ',' {
			if i > start {
				selected[selectedKeys[start:i]] = true
			}
			start = i + 1
		}
	}
	items := parseComboItems(raw) // same "key,value;key,value" wire shape as ComboBox
	out := make([]ListBoxItem, len(items))
	for i, it := range items {
		out[i] = ListBoxItem{Key: it.Key, Value: it.Value, Selected: selected[it.Key]}
	}
	return out
}

// Select fires the ListBox's Select event for the given item key.
func (l *ListBox) Select(key string) (wdevent.Event, error) {
	return l.FireEvent("Select", []wdevent.Param{l.idParam(), {Name: "Key", Value: key}})
}

// ListBoxActionItem is a single actionable row within a ListBox that
// fires its own Select/Press independent of the ListBox's bulk Select,
// used by "action list" layouts (spec.md §4.6).
type ListBoxActionItem struct {
	Base
}

// ListBoxActionItemData is ListBoxActionItem's typed lsdata shape.
type ListBoxActionItemData struct {
	Text    string
	Enabled bool
}

// Data decodes this ListBoxActionItem's lsdata.
func (a *ListBoxActionItem) Data() (ListBoxActionItemData, error) {
	f, err := a.LSData()
	if err != nil {
		return ListBoxActionItemData{}, err
	}
	return ListBoxActionItemData{Text: f.String("0"), Enabled: !f.Has("3") || f.Bool("3")}, nil
}

// Press fires the ListBoxActionItem's Press event.
func (a *ListBoxActionItem) Press() (wdevent.Event, error) {
	return a.FireEvent("Press", []wdevent.Param{a.idParam()})
}
