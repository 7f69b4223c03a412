// Package importer loads part schemas from disk. It is the boundary in
// front of the pricing core: JSON files are decoded into the raw wire
// shape and DXF drawings are converted into vertex/edge schemas, but all
// validation and pricing happens in the estimator.
package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/beamcost/beamcost/internal/estimator"
	"github.com/beamcost/beamcost/internal/model"
)

// LoadJSON reads a schema file and decodes the wire shape. Unreadable or
// syntactically invalid input surfaces as a ParseFailure; the decoded
// schema is otherwise passed through unvalidated.
func LoadJSON(path string) (model.RawSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RawSchema{}, &estimator.Error{Kind: estimator.ParseFailure, Schema: path, Err: err}
	}
	var raw model.RawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.RawSchema{}, &estimator.Error{Kind: estimator.ParseFailure, Schema: path, Err: err}
	}
	return raw, nil
}

// LoadSchema loads and normalizes a schema file, dispatching on the file
// extension: .dxf files go through the DXF converter, everything else is
// treated as JSON.
func LoadSchema(path string) (*model.Schema, error) {
	if strings.EqualFold(filepath.Ext(path), ".dxf") {
		return ImportDXF(path)
	}
	raw, err := LoadJSON(path)
	if err != nil {
		return nil, err
	}
	return estimator.BuildSchema(path, raw)
}
