package element

import "github.com/uskr/wdclient/internal/wdevent"

// TabStrip is the tabbed-container widget (spec.md §4.6).
type TabStrip struct {
	Base
}

// TabStripItem is one tab header: its id and displayed caption.
type TabStripItem struct {
	ID   string
	Text string
}

// TabStripData is TabStrip's typed lsdata shape. Field "0" holds the
// semicolon-joined "id,text" tab list, "1" the currently selected tab id.
type TabStripData struct {
	Items      []TabStripItem
	SelectedID string
}

// Data decodes this TabStrip's lsdata.
func (t *TabStrip) Data() (TabStripData, error) {
	f, err := t.LSData()
	if err != nil {
		return TabStripData{}, err
	}
	return TabStripData{
		Items:      parseTabItems(f.String("0")),
		SelectedID: f.String("1"),
	}, nil
}

func parseTabItems(raw string) []TabStripItem {
	if raw == "" {
		return nil
	}
	var items []TabStripItem
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ';' {
			if i > start {
				items = append(items, splitTabItem(raw[start:i]))
			}
			start = i + 1
		}
	}
	return items
}

func splitTabItem(pair string) TabStripItem {
	for i := 0; i < len(pair); i++ {
		if pair[i] == ',' {
			return TabStripItem{ID: pair[:i], Text: pair[i+1:]}
		}
	}
	return TabStripItem{ID: pair, Text: pair}
}

// TabSelect fires the TabStrip's tabSelect event for the given tab id
// (spec.md §2 component I lists tabSelect as its own event name, not
// "Select", matching the framework's own inconsistent casing).
func (t *TabStrip) TabSelect(tabID string) (wdevent.Event, error) {
	return t.FireEvent("tabSelect", []wdevent.Param{t.idParam(), {Name: "TabIndex", Value: tabID}})
}
