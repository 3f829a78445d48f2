package catalog

import (
	"encoding/xml"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
)

// Schema names the elements of a catalog document
type Schema struct {
	Category      entities.Category
	RecordElement string
	NameElement   string
}

// PowerSchema reads <Powers><Power><Name>..</Name>..</Power></Powers>
var PowerSchema = Schema{
	Category:      entities.CategoryPower,
	RecordElement: "Power",
	NameElement:   entities.PowerFieldName,
}

// TraitSchema reads <traits><trait><name>..</name>..</trait></traits>
var TraitSchema = Schema{
	Category:      entities.CategoryTrait,
	RecordElement: "trait",
	NameElement:   entities.TraitFieldName,
}

// Load reads the catalog file at path.
//
// Errors are KindLoad: NotFound when the file does not exist, Malformed when
// it is not well-formed XML or a record lacks its name element, Internal for
// anything else. A failed load never returns a partial catalog.
func Load(path string, schema Schema) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("The file '%s' was not found.", path).
				WithKind(errors.KindLoad).
				WithMeta("path", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to open '%s'", path).
			WithKind(errors.KindLoad).
			WithMeta("path", path)
	}
	defer func() { _ = f.Close() }()

	c, err := Parse(f, schema)
	if err != nil {
		return nil, errors.Wrapf(err, "An error occurred while parsing '%s': %s", path, errors.GetMessage(err))
	}

	slog.Debug("Catalog loaded",
		"path", path,
		"category", schema.Category,
		"entries", c.Len(),
	)
	return c, nil
}

// Parse reads a catalog document from r. Record elements are the direct
// children of the root named schema.RecordElement; every child element of a
// record becomes a field holding its text verbatim.
func Parse(r io.Reader, schema Schema) (*Catalog, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	c := New(schema.Category)

	if err := skipToRoot(dec); err != nil {
		return nil, err
	}

	for index := 0; ; {
		tok, err := dec.Token()
		if err != nil {
			return nil, classify(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != schema.RecordElement {
				if err := dec.Skip(); err != nil {
					return nil, classify(err)
				}
				continue
			}
			entry, hasName, err := parseRecord(dec, schema)
			if err != nil {
				return nil, err
			}
			if !hasName {
				return nil, errors.Malformedf("%s record %d has no <%s> element", schema.RecordElement, index+1, schema.NameElement).
					WithKind(errors.KindLoad).
					WithMeta("record", index+1)
			}
			c.add(entry)
			index++
		case xml.EndElement:
			// root closed
			if err := expectEOF(dec); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
}

func skipToRoot(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return errors.Malformed("no element found").WithKind(errors.KindLoad)
		}
		if err != nil {
			return classify(err)
		}
		if _, ok := tok.(xml.StartElement); ok {
			return nil
		}
	}
}

func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		if _, ok := tok.(xml.StartElement); ok {
			return errors.Malformed("junk after document element").WithKind(errors.KindLoad)
		}
	}
}

// parseRecord consumes tokens up to the end of the current record element.
// A repeated child element replaces the earlier value in place.
func parseRecord(dec *xml.Decoder, schema Schema) (entities.Entry, bool, error) {
	entry := entities.Entry{Category: schema.Category}
	hasName := false
	positions := make(map[string]int)

	for {
		tok, err := dec.Token()
		if err != nil {
			return entry, false, classify(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			value, err := elementText(dec)
			if err != nil {
				return entry, false, err
			}
			name := t.Name.Local
			if i, ok := positions[name]; ok {
				entry.Fields[i].Value = value
			} else {
				positions[name] = len(entry.Fields)
				entry.Fields = append(entry.Fields, entities.Field{Name: name, Value: value})
			}
			if name == schema.NameElement && !hasName {
				entry.Name = value
				hasName = true
			}
		case xml.EndElement:
			return entry, hasName, nil
		}
	}
}

// elementText returns the character data directly inside the current element
func elementText(dec *xml.Decoder) (string, error) {
	var text []byte
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", classify(err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			text = append(text, t...)
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return "", classify(err)
			}
		case xml.EndElement:
			return string(text), nil
		}
	}
}

func classify(err error) error {
	var syntaxErr *xml.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.WrapWithCodef(err, errors.CodeMalformed, "line %d: %s", syntaxErr.Line, syntaxErr.Msg).
			WithKind(errors.KindLoad).
			WithMeta("line", syntaxErr.Line)
	}
	if err == io.EOF {
		return errors.Malformed("unexpected end of document").WithKind(errors.KindLoad)
	}
	return errors.WrapWithCode(err, errors.CodeInternal, "unexpected error while reading catalog").
		WithKind(errors.KindLoad)
}
