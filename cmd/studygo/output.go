package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/tidwall/pretty"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// writeJSON prints v as indented JSON, colorized when w is a terminal.
func writeJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	out := pretty.Pretty(raw)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = pretty.Color(out, nil)
	}

	_, err = w.Write(out)
	return err
}

// describeLanguages renders the language pair of a list, e.g.
// "French (France) -> Dutch (Netherlands)".
func describeLanguages(list *types.VocabularyList) string {
	from, fromErr := list.FromTag()
	to, toErr := list.ToTag()
	return tagName(list.FromLanguage, from, fromErr) + " -> " + tagName(list.ToLanguage, to, toErr)
}

func tagName(code string, tag language.Tag, err error) string {
	if code == "" {
		return "(unknown)"
	}
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
