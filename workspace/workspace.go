// Package workspace keeps the evaluated state of a directory of expression
// files. It backs the language server, the file watcher and the check
// command.
package workspace

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/arith"
)

var log = commonlog.GetLogger("arith.workspace")

// DefaultExtension is the file extension of expression files.
const DefaultExtension = ".arith"

type Workspace struct {
	mu         sync.RWMutex
	rootDir    string
	extensions []string
	evaluator  *arith.Evaluator
	files      map[string]*Document
}

// Document is an expression file and the result of every line in it.
type Document struct {
	Path    string
	Content []byte
	Lines   []Line
}

// Line is one expression of a document. Blank lines and comments have no
// Line.
type Line struct {
	Number     int // 1-based
	Expression string
	Value      float64
	Err        error
}

func New(rootDir string, evaluator *arith.Evaluator, extensions ...string) *Workspace {
	if evaluator == nil {
		evaluator = arith.New()
	}
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Workspace{
		rootDir:    rootDir,
		extensions: extensions,
		evaluator:  evaluator,
		files:      make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// Matches reports whether path has one of the workspace's extensions.
func (w *Workspace) Matches(path string) bool {
	return slices.Contains(w.extensions, filepath.Ext(path))
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.Matches(path) {
			if _, err := w.ScanFile(path); err != nil {
				log.Warningf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile evaluates content and stores it as the document for path.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := &Document{
		Path:    path,
		Content: content,
		Lines:   EvaluateLines(w.evaluator, string(content)),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	log.Debugf("evaluated %s: %d expressions, %d failed", path, len(doc.Lines), len(doc.Failed()))
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the paths of all known documents in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// EvaluateLines evaluates each line of text as a separate expression. Text
// after a "#" is a comment; lines left empty are skipped.
func EvaluateLines(e *arith.Evaluator, text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		expr := strings.TrimSuffix(raw, "\r")
		if j := strings.IndexByte(expr, '#'); j >= 0 {
			expr = expr[:j]
		}
		if strings.TrimSpace(expr) == "" {
			continue
		}
		v, err := e.Evaluate(expr)
		lines = append(lines, Line{Number: i + 1, Expression: expr, Value: v, Err: err})
	}
	return lines
}

// Failed returns the lines whose evaluation failed.
func (d *Document) Failed() []Line {
	var failed []Line
	for _, l := range d.Lines {
		if l.Err != nil {
			failed = append(failed, l)
		}
	}
	return failed
}

// LineAt returns the expression on line n, 1-based, or nil if the line holds
// no expression.
func (d *Document) LineAt(n int) *Line {
	i, found := slices.BinarySearchFunc(d.Lines, n, func(l Line, n int) int {
		return l.Number - n
	})
	if !found {
		return nil
	}
	return &d.Lines[i]
}
