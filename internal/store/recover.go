package store

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// repairMarkup rewrites malformed system list text into well-formed XML,
// keeping as much of the document as a non-strict decoder can read.
//
// Mismatched end tags close the elements opened inside them, and elements
// still open when the input ends (or stops being readable) are closed at
// that point. Text with no element at all cannot be repaired.
func repairMarkup(text string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = false

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)

	var open []xml.Name
	sawElement := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			open = append(open, t.Name)
			sawElement = true
		case xml.EndElement:
			open = open[:len(open)-1]
		case xml.ProcInst:
			// The declaration may only start a document; the repaired
			// text does not need it.
			if t.Target == "xml" {
				continue
			}
		}

		if err := enc.EncodeToken(tok); err != nil {
			return "", err
		}
	}

	if !sawElement {
		return "", errNoRoot
	}

	for i := len(open) - 1; i >= 0; i-- {
		if err := enc.EncodeToken(xml.EndElement{Name: open[i]}); err != nil {
			return "", err
		}
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
