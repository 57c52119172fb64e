package element

import (
	"github.com/uskr/wdclient/internal/wdevent"
	"github.com/uskr/wdclient/internal/werror"
)

// ComboBox is the single-select dropdown widget (spec.md §4.6).
type ComboBox struct {
	Base
}

// ComboBoxItem is one <option>-equivalent entry: a (key, displayed
// value) pair, the framework's own KeyValue idiom (spec.md §9).
type ComboBoxItem struct {
	Key   string
	Value string
}

// ComboBoxData is ComboBox's typed lsdata shape. Field "0" holds the
// semicolon-joined "key,value" item list, "1" the currently selected
// key, "3" the enabled flag.
type ComboBoxData struct {
	Items       []ComboBoxItem
	SelectedKey string
	Enabled     bool
}

// Data decodes this ComboBox's lsdata, including its item list.
func (c *ComboBox) Data() (ComboBoxData, error) {
	f, err := c.LSData()
	if err != nil {
		return ComboBoxData{}, err
	}
	return ComboBoxData{
		Items:       parseComboItems(f.String("0")),
		SelectedKey: f.String("1"),
		Enabled:     !f.Has("3") || f.Bool("3"),
	}, nil
}

func parseComboItems(raw string) []ComboBoxItem {
	if raw == "" {
		return nil
	}
	var items []ComboBoxItem
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ';' {
			if i > start {
				items = append(items, splitComboItem(raw[start:i]))
			}
			start = i + 1
		}
	}
	return items
}

func splitComboItem(pair string) ComboBoxItem {
	for i := 0; i < len(pair); i++ {
		if pair[i] == ',' {
			return ComboBoxItem{Key: pair[:i], Value: pair[i+1:]}
		}
	}
	return ComboBoxItem{Key: pair, Value: pair}
}

// Select fires the ComboBox's Select event for the given item key. It
// validates the key against the decoded item list first, returning
// werror.InvalidContent rather than sending a selection the server
// would reject.
func (c *ComboBox) Select(key string) (wdevent.Event, error) {
	data, err := c.Data()
	if err != nil {
		return wdevent.Event{}, err
	}
	found := false
	for _, it := range data.Items {
		if it.Key == key {
			found = true
			break
		}
	}
	if !found {
		return wdevent.Event{}, werror.InvalidContent(c.ID, "key "+key+" not among ComboBox items")
	}
	return c.FireEvent("Select", []wdevent.Param{c.idParam(), {Name: "Key", Value: key}})
}
