package cflat

import "fmt"

// Importer walks a statement list once, pulling every function declaration
// out into the Globals' function tables and recursively following import
// statements, grounded on original_source/Importer.java's importFunctions.
// Anything left in the list after this pass is ordinary top-level code for
// the interpreter to run; a FunctionDeclaration or ImportDeclaration is
// stripped from the list as a side effect of being registered, exactly as
// the original's Iterator.remove() does.
//
// cache dedupes repeated imports of the same file within one run — a
// supplemental improvement over the original, which reparses and
// re-registers a file's functions every time it's imported, silently
// re-declaring (and erroring on) any function pulled in twice.
type Importer struct {
	globals  *Globals
	resolver *Resolver
	readFile func(name string) (string, error)
	diags    *Diagnostics
	cache    map[string]bool
}

func NewImporter(globals *Globals, resolver *Resolver, diags *Diagnostics, readFile func(string) (string, error)) *Importer {
	return &Importer{globals: globals, resolver: resolver, readFile: readFile, diags: diags, cache: make(map[string]bool)}
}

// ImportFunctions mutates stmts in place, returning the statements that
// remain after every function/import declaration has been spliced out.
func (im *Importer) ImportFunctions(stmts []Stmt) []Stmt {
	kept := stmts[:0]
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *FunctionDeclStmt:
			im.registerFunction(s)
		case *ImportStmt:
			for _, name := range s.Names {
				im.importFile(name)
			}
		default:
			kept = append(kept, stmt)
		}
	}
	return kept
}

func (im *Importer) registerFunction(decl *FunctionDeclStmt) {
	fn := &Callable{
		Arity: len(decl.Params),
		Call: func(interp *Interpreter, args []Value) (Value, error) {
			return interp.CallUserFunction(decl, args)
		},
	}
	var err error
	if decl.Returns {
		err = im.globals.DefineFunc(decl.Name, len(decl.Params), fn)
	} else {
		err = im.globals.DefineVoid(decl.Name, len(decl.Params), fn)
	}
	if err != nil {
		im.diags.Add(decl.Name.File, decl.Name.Line, err.Error())
		return
	}
	im.resolver.resolveFunction(decl)
}

// importFile resolves an import against the fixed "./cflatexe/" directory
// with a ".cflat" extension, matching original_source/Importer.java's
// hardcoded `"./cflatexe/" + im.value() + ".cflat"` — imports are not
// resolved relative to the importing file's own location.
func (im *Importer) importFile(name Token) {
	path := "./cflatexe/" + name.text() + ".cflat"
	if im.cache[path] {
		return
	}
	im.cache[path] = true

	source, err := im.readFile(path)
	if err != nil {
		im.diags.Add(name.File, name.Line, fmt.Sprintf("file '%s' not found", path))
		return
	}
	importDiags := &Diagnostics{}
	tokens := NewLexer(source, path, importDiags).Lex()
	stmts := NewParser(tokens, importDiags).Parse()
	if importDiags.HasErrors() {
		for _, e := range importDiags.Errors() {
			im.diags.Add(e.File, e.Line, e.Message)
		}
	}
	im.ImportFunctions(stmts)
}
