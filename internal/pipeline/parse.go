package pipeline

import (
	"os"

	"github.com/standardbeagle/lci/internal/langregistry"
	"github.com/standardbeagle/lci/internal/parser"
	"github.com/standardbeagle/lci/internal/types"
)

// ParseUnit is what PARSE sends to COLLECT: one file's raw parse result
// plus enough bookkeeping (content hash, byte content) for COLLECT to
// register the file and short-circuit unchanged content on the next run
// (§4.5 READ/PARSE, §3 File registration).
type ParseUnit struct {
	Path        string
	LanguageID  string
	ContentHash uint64
	Content     []byte
	Result      parser.Result
	Err         error
}

// ReadAndParse is PARSE's per-file work function: read the file, hash its
// content, and hand it to the language's parser. A read or parse failure is
// carried on the unit rather than returned, so one bad file never aborts
// the whole wave (§7 "a single file's error never halts the pipeline").
func ReadAndParse(task FileTask, registry *langregistry.Registry) ParseUnit {
	unit := ParseUnit{Path: task.Path, LanguageID: task.LanguageID}

	content, err := os.ReadFile(task.Path)
	if err != nil {
		unit.Err = err
		return unit
	}
	unit.Content = content
	unit.ContentHash = types.StableHash64(content)

	def, ok := registry.Get(task.LanguageID)
	if !ok {
		unit.Err = errUnsupportedLanguage(task.LanguageID)
		return unit
	}
	p, ok := def.NewParser().(parser.Parser)
	if !ok {
		unit.Err = errUnsupportedLanguage(task.LanguageID)
		return unit
	}

	ctx := parser.NewContext(0, task.Path)
	result, err := p.Parse(content, ctx)
	if err != nil {
		unit.Err = err
		return unit
	}
	unit.Result = result
	return unit
}

type errUnsupportedLanguage string

func (e errUnsupportedLanguage) Error() string { return "pipeline: unsupported language " + string(e) }
