package element

// The widgets in this file are read-only display elements: they carry
// lsdata worth decoding but fire no events of their own (spec.md §4.6
// lists them as non-interactive). Grouped into one file since each is a
// one-field wrapper around Base, matching the teacher's convention of
// collapsing structurally-identical small types together rather than
// giving every one its own file.

// TextView displays a plain text string, optionally as a styled label.
type TextView struct{ Base }

// TextViewData is TextView's typed lsdata shape.
type TextViewData struct {
	Text     string
	Design   string
	WrapText bool
}

// Data decodes this TextView's lsdata.
func (t *TextView) Data() (TextViewData, error) {
	f, err := t.LSData()
	if err != nil {
		return TextViewData{}, err
	}
	return TextViewData{Text: f.String("0"), Design: f.String("2"), WrapText: f.Bool("4")}, nil
}

// Caption is a section heading / form-field label.
type Caption struct{ Base }

// CaptionData is Caption's typed lsdata shape.
type CaptionData struct {
	Text string
}

// Data decodes this Caption's lsdata.
func (c *Caption) Data() (CaptionData, error) {
	f, err := c.LSData()
	if err != nil {
		return CaptionData{}, err
	}
	return CaptionData{Text: f.String("0")}, nil
}

// Label associates display text with another element's id (the
// for-control it labels).
type Label struct{ Base }

// LabelData is Label's typed lsdata shape.
type LabelData struct {
	Text       string
	LabelForID string
}

// Data decodes this Label's lsdata.
func (l *Label) Data() (LabelData, error) {
	f, err := l.LSData()
	if err != nil {
		return LabelData{}, err
	}
	return LabelData{Text: f.String("0"), LabelForID: f.String("1")}, nil
}

// FormattedTextView renders a constrained HTML-subset rich text body.
type FormattedTextView struct{ Base }

// FormattedTextViewData is FormattedTextView's typed lsdata shape.
type FormattedTextViewData struct {
	Text string
}

// Data decodes this FormattedTextView's lsdata.
func (f *FormattedTextView) Data() (FormattedTextViewData, error) {
	fields, err := f.LSData()
	if err != nil {
		return FormattedTextViewData{}, err
	}
	return FormattedTextViewData{Text: fields.String("0")}, nil
}

// Image displays a static image resource.
type Image struct{ Base }

// ImageData is Image's typed lsdata shape.
type ImageData struct {
	Source  string
	AltText string
}

// Data decodes this Image's lsdata.
func (img *Image) Data() (ImageData, error) {
	f, err := img.LSData()
	if err != nil {
		return ImageData{}, err
	}
	return ImageData{Source: f.String("0"), AltText: f.String("1")}, nil
}

// Icon is Image's small-glyph sibling kind; the framework distinguishes
// them at the wire level even though both are static pictures.
type Icon struct{ Base }

// IconData is Icon's typed lsdata shape.
type IconData struct {
	Source  string
	AltText string
}

// Data decodes this Icon's lsdata.
func (ic *Icon) Data() (IconData, error) {
	f, err := ic.LSData()
	if err != nil {
		return IconData{}, err
	}
	return IconData{Source: f.String("0"), AltText: f.String("1")}, nil
}

// ProgressIndicator displays a bounded numeric progress value.
type ProgressIndicator struct{ Base }

// ProgressIndicatorData is ProgressIndicator's typed lsdata shape.
type ProgressIndicatorData struct {
	Percent int
	Text    string
}

// Data decodes this ProgressIndicator's lsdata.
func (p *ProgressIndicator) Data() (ProgressIndicatorData, error) {
	f, err := p.LSData()
	if err != nil {
		return ProgressIndicatorData{}, err
	}
	return ProgressIndicatorData{Percent: f.Int("0"), Text: f.String("1")}, nil
}
