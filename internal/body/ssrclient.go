package body

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/werror"
)

// SsrClient is the bootstrap record extracted once from the landing page
// (spec.md §3, §6). It must be refreshed whenever a Full update replaces
// the region containing the SsrClient form.
type SsrClient struct {
	Action     string
	Charset    string
	WdSecureID string
	AppName    string
	UseBeacon  bool
	// FormID is the bootstrap <form>'s own DOM id, used as the element id
	// of the auto-generated Form "Request" event process_event appends
	// after every submittable event (spec.md §4.4).
	FormID string
}

// marker is the literal substring the framework embeds in the bootstrap
// form's script/body, used to find the one form that matters among
// however many <form> elements the page contains.
const marker = "sap.client.SsrClient.form"

// extractSsrClient locates the unique <form> whose text contains marker
// and reads its required named inputs (spec.md §6). Missing the form or
// any required input is a fatal BodyParse error.
func extractSsrClient(doc *goquery.Document) (SsrClient, error) {
	var form *goquery.Selection
	doc.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), marker) {
			sel := s
			form = sel
			return false
		}
		return true
	})
	if form == nil {
		return SsrClient{}, werror.BodyParse("no <form> containing "+marker+" found", nil)
	}

	action, ok := form.Attr("action")
	if !ok || action == "" {
		return SsrClient{}, werror.BodyParse("SsrClient form missing action attribute", nil)
	}

	charset, err := requiredInputValue(doc, "sap-charset")
	if err != nil {
		return SsrClient{}, err
	}
	secureID, err := requiredInputValue(doc, "sap-wd-secure-id")
	if err != nil {
		return SsrClient{}, err
	}
	appName, err := requiredInputValue(doc, "fesrAppName")
	if err != nil {
		return SsrClient{}, err
	}
	beaconStr, err := requiredInputValue(doc, "fesrUseBeacon")
	if err != nil {
		return SsrClient{}, err
	}

	formID, _ := form.Attr("id")

	return SsrClient{
		Action:     action,
		Charset:    charset,
		WdSecureID: secureID,
		AppName:    appName,
		UseBeacon:  beaconStr == "true",
		FormID:     formID,
	}, nil
}

func requiredInputValue(doc *goquery.Document, id string) (string, error) {
	sel := doc.Find(`input#` + id)
	if sel.Length() == 0 {
		return "", werror.BodyParse("missing required input #"+id, nil)
	}
	v, ok := sel.First().Attr("value")
	if !ok {
		return "", werror.BodyParse("input #"+id+" has no value attribute", nil)
	}
	return v, nil
}
