package body

import (
	"fmt"

	"github.com/uskr/wdclient/internal/bodyupdate"
	"github.com/uskr/wdclient/internal/werror"
)

// Apply mutates the Body per spec.md §4.5 "Apply":
//
//   - Full: locate [id=<contentId>] and replace its inner HTML.
//   - Delta: for each (controlId, html), locate
//     [id=<windowId>_root_] [id=<controlId>] and replace the outer element.
//
// The replacement HTML is untrusted server data; it is inserted as HTML,
// never escaped (spec.md §4.5). Apply refreshes the SsrClient record
// afterward since a Full update may have replaced its form.
func (b *Body) Apply(u bodyupdate.Update) error {
	switch u.Kind {
	case bodyupdate.KindFull:
		if err := b.applyFull(u); err != nil {
			return err
		}
	case bodyupdate.KindDelta:
		if err := b.applyDelta(u); err != nil {
			return err
		}
	default:
		return werror.BodyUpdate("unknown update kind", nil)
	}
	b.refreshSsrClient()
	return nil
}

func (b *Body) applyFull(u bodyupdate.Update) error {
	b.mu.RLock()
	doc := b.doc
	b.mu.RUnlock()

	sel := doc.Find(fmt.Sprintf(`[id="%s"]`, u.ContentID))
	if sel.Length() == 0 {
		return werror.BodyUpdate("full-update target not found: "+u.ContentID, nil)
	}
	sel.First().SetHtml(u.InnerHTML)

	html, err := doc.Html()
	if err != nil {
		return werror.BodyUpdate("failed to serialize document after full-update", err)
	}
	return b.replaceDocument(html)
}

func (b *Body) applyDelta(u bodyupdate.Update) error {
	if len(u.Controls) == 0 {
		// No payload: leave rawHTML bitwise untouched rather than round
		// tripping through goquery's serializer for a no-op (spec.md §8
		// testable property 4).
		return nil
	}

	b.mu.RLock()
	doc := b.doc
	b.mu.RUnlock()

	for _, patch := range u.Controls {
		selector := fmt.Sprintf(`[id="%s_root_"] [id="%s"]`, u.WindowID, patch.ControlID)
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			return werror.BodyUpdate("delta-update target not found: "+patch.ControlID, nil)
		}
		sel.First().ReplaceWithHtml(patch.HTML)
	}

	html, err := doc.Html()
	if err != nil {
		return werror.BodyUpdate("failed to serialize document after delta-update", err)
	}
	return b.replaceDocument(html)
}
