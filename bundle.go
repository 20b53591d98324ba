package npchunk

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Bundle is a grammar stored as YAML:
//
//	start: S
//	blocks:
//	  - |
//	    S -> NP VP
//	    NP -> N
//	  - |
//	    N -> "holmes"
//
// Start may be omitted, then the first declared nonterminal is used
type Bundle struct {
	Start  string   `yaml:"start"`
	Blocks []string `yaml:"blocks"`
}

// Grammar builds the grammar of the bundle
func (b *Bundle) Grammar() (*Grammar, error) {
	return ParseGrammarWithStart(b.Start, b.Blocks...)
}

// ReadBundle decodes a YAML grammar bundle
func ReadBundle(r io.Reader) (*Bundle, error) {
	bundle := new(Bundle)
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(bundle); err != nil {
		if err == io.EOF {
			return nil, &GrammarError{Kind: ErrEmptyGrammar}
		}
		return nil, errors.Wrap(err, "ReadBundle")
	}
	return bundle, nil
}

// LoadGrammar reads plain grammar text from r
func LoadGrammar(r io.Reader) (*Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "LoadGrammar")
	}
	return ParseGrammar(string(data))
}

// LoadGrammarFile loads a grammar from path. Files ending with .yaml or .yml
// are read as a Bundle, anything else as plain grammar text
func LoadGrammarFile(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "LoadGrammarFile: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		bundle, err := ReadBundle(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "LoadGrammarFile: %s", path)
		}
		return bundle.Grammar()
	}
	return ParseGrammar(string(data))
}
