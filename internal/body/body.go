// Package body owns the current HTML document string, its parsed DOM
// view, and the extracted SsrClient bootstrap record (spec.md §3). A
// Body is produced by navigate and mutated in place by Apply.
package body

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/werror"
)

// Body is the in-memory representation of one WebDynpro window. It is
// exclusively owned by its client (spec.md §5); element views borrow its
// Doc() and must not outlive the next Apply call.
type Body struct {
	mu       sync.RWMutex
	rawHTML  string
	doc      *goquery.Document
	ssr      SsrClient
	revision uint64
}

// New parses rawHTML into a Body, extracting its SsrClient record.
// Missing the bootstrap form or any of its required inputs is a fatal
// parse error (spec.md §3 invariants).
func New(rawHTML string) (*Body, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, werror.BodyParse("invalid HTML", err)
	}
	ssr, err := extractSsrClient(doc)
	if err != nil {
		return nil, err
	}
	return &Body{
		rawHTML:  rawHTML,
		doc:      doc,
		ssr:      ssr,
		revision: revisionOf(rawHTML),
	}, nil
}

func revisionOf(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// RawHTML returns the current document text.
func (b *Body) RawHTML() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rawHTML
}

// Doc returns the parsed DOM view for read-only querying. Callers must
// not retain it past the next call to Apply.
func (b *Body) Doc() *goquery.Document {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.doc
}

// SsrClient returns the current bootstrap record.
func (b *Body) SsrClient() SsrClient {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ssr
}

// Revision returns a hash of the current rawHTML, so cached element
// node-ids or lazily-decoded fields can be invalidated across mutations
// (spec.md §3: "Hash of Body is a function of rawHtml").
func (b *Body) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// replaceDocument re-parses html as the new document and bumps revision.
// Used by Apply; kept unexported so mutation only happens
// through the update-applier, never by direct Body callers.
func (b *Body) replaceDocument(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return werror.BodyUpdate("failed to re-parse document after update", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rawHTML = html
	b.doc = doc
	b.revision = revisionOf(html)
	return nil
}

// refreshSsrClient re-extracts the bootstrap record, required after a
// Full update since it may have replaced the region containing the form
// (spec.md §3: "Must be refreshed if a full-update replaces it").
func (b *Body) refreshSsrClient() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ssr, err := extractSsrClient(b.doc); err == nil {
		b.ssr = ssr
	}
	// If the form isn't present post-update, keep the prior SsrClient:
	// most updates don't touch the bootstrap region at all.
}

// WithDoc runs fn with the current parsed document held under a read
// lock, for callers (the element parser) that need to guarantee the
// document doesn't get swapped out mid-query.
func (b *Body) WithDoc(fn func(doc *goquery.Document)) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fn(b.doc)
}
