package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is a snapshot of an open document. Result is the analysis of
// Text and is never nil.
type Document struct {
	URI     string
	Text    string
	Version protocol.Integer
	Result  *AnalysisResult
}

// Workspace tracks the documents the client has open. Text is analyzed
// once per edit, when it arrives, so request handlers only read snapshots.
type Workspace struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewWorkspace() *Workspace {
	return &Workspace{docs: make(map[string]Document)}
}

// Open records a document the client opened, replacing any earlier copy.
func (w *Workspace) Open(uri, text string, version protocol.Integer) Document {
	doc := Document{URI: uri, Text: text, Version: version, Result: Analyze(uri, text)}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[uri] = doc
	return doc
}

// Change replaces the full text of an open document. It reports false,
// keeping the stored snapshot, when the document is not open or version
// is older than the stored one.
func (w *Workspace) Change(uri, text string, version protocol.Integer) (Document, bool) {
	doc := Document{URI: uri, Text: text, Version: version, Result: Analyze(uri, text)}

	w.mu.Lock()
	defer w.mu.Unlock()
	cur, ok := w.docs[uri]
	if !ok || version < cur.Version {
		return cur, false
	}
	w.docs[uri] = doc
	return doc, true
}

// Close forgets a document. It reports whether the document was open.
func (w *Workspace) Close(uri string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.docs[uri]
	delete(w.docs, uri)
	return ok
}

func (w *Workspace) Get(uri string) (Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.docs[uri]
	return doc, ok
}

// Len returns the number of open documents.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.docs)
}
