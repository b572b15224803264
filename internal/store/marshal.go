package store

import (
	"errors"

	"github.com/beevik/etree"
)

const (
	rootTag   = "systemList"
	systemTag = "system"
	indent    = 2
)

// emptyDocument is written by Load when a missing source is allowed.
const emptyDocument = "<?xml version=\"1.0\"?>\n<systemList>\n</systemList>\n"

var errNoRoot = errors.New("document has no root element")

// Element returns a detached system element with one child per field in
// FieldOrder. Empty fields become empty elements, never absent ones.
func (r Record) Element() *etree.Element {
	el := etree.NewElement(systemTag)
	for _, name := range FieldOrder {
		child := el.CreateElement(name)
		if v := r.Field(name); v != "" {
			child.SetText(v)
		}
	}
	return el
}

// recordFromElement builds a Record from a system element.
// Missing child elements yield empty fields.
func recordFromElement(el *etree.Element) Record {
	var r Record
	for _, name := range FieldOrder {
		if child := el.SelectElement(name); child != nil {
			r.setField(name, child.Text())
		}
	}
	return r
}

// unmarshalRecords parses system list text, after the ToXML pass, into
// records in document order. Text etree rejects is run through
// repairMarkup and read again; recovered reports whether that happened.
// If the repair fails too, the original read error is returned.
func unmarshalRecords(text string) (records []Record, recovered bool, err error) {
	doc, err := readDocument(text)
	if err != nil {
		repaired, repairErr := repairMarkup(text)
		if repairErr != nil {
			return nil, false, err
		}
		if doc, err = readDocument(repaired); err != nil {
			return nil, false, err
		}
		recovered = true
	}

	root := doc.Root()
	if root == nil {
		return nil, false, errNoRoot
	}

	systems := root.SelectElements(systemTag)
	records = make([]Record, 0, len(systems))
	for _, el := range systems {
		records = append(records, recordFromElement(el))
	}
	return records, recovered, nil
}

func readDocument(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	return doc, nil
}

// marshalRecords renders records as an indented system list document,
// before the FromXML pass.
func marshalRecords(records []Record) (string, error) {
	doc := etree.NewDocument()
	// Quotes and apostrophes stay literal in text, as EmulationStation
	// writes them.
	doc.WriteSettings.CanonicalText = true
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement(rootTag)
	for _, r := range records {
		root.AddChild(r.Element())
	}

	doc.Indent(indent)
	return doc.WriteToString()
}
