package driver

import (
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/lexer"
	"github.com/atisharma/beautifhy/internal/source"
	"github.com/atisharma/beautifhy/internal/token"
)

// TokenizeResult holds the token stream for one file together with the
// lexical diagnostics it produced.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes one file to EOF. Lexical errors land in the bag; the
// token stream is still returned so dumps show what the lexer saw.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource lexes in-memory content under a virtual name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	// Dedup so a resynchronizing scan cannot flood the dump with the
	// same complaint.
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.NewDedupReporter((&lexer.ReporterAdapter{Bag: bag}).Reporter()),
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
