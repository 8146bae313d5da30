// Package match builds the classified vendor and item tables: a full outer
// join of two normalized catalogs on canonical keys, with every row tagged
// as present in both sources or only one. Presence is modeled structurally
// (a side is nil exactly when the status says it is absent) so a "matched"
// row with a missing side cannot be represented.
package match

import (
	"github.com/pricelens/pricelens/pkg/errors"
)

// Status classifies a joined row by which sources contain it.
type Status int

const (
	// StatusMatched means the key exists in both sources.
	StatusMatched Status = iota
	// StatusOnlySource1 means the key exists only in the first source.
	StatusOnlySource1
	// StatusOnlySource2 means the key exists only in the second source.
	StatusOnlySource2
)

// String returns the status's wire name.
func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusOnlySource1:
		return "only_in_source1"
	case StatusOnlySource2:
		return "only_in_source2"
	default:
		return "unknown"
	}
}

// ParseStatus converts a wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "matched":
		return StatusMatched, nil
	case "only_in_source1":
		return StatusOnlySource1, nil
	case "only_in_source2":
		return StatusOnlySource2, nil
	default:
		return 0, errors.NewValidationError("status", s, "must be one of: matched, only_in_source1, only_in_source2")
	}
}

// MarshalYAML implements yaml.BytesMarshaler.
func (s Status) MarshalYAML() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PriceRelation is the directional comparison between the two sources'
// prices for a matched item. It is RelationNone unless the row is matched
// and both prices are non-nil.
type PriceRelation int

const (
	// RelationNone means no comparison applies (unmatched row or nil price).
	RelationNone PriceRelation = iota
	// Source1Higher means source 1 lists the higher price.
	Source1Higher
	// Source1Lower means source 1 lists the lower price.
	Source1Lower
	// Same means both sources list exactly the same price.
	Same
)

// String returns the relation's wire name, empty for RelationNone.
func (r PriceRelation) String() string {
	switch r {
	case Source1Higher:
		return "source1_higher"
	case Source1Lower:
		return "source1_lower"
	case Same:
		return "same"
	default:
		return ""
	}
}

// MarshalYAML implements yaml.BytesMarshaler.
func (r PriceRelation) MarshalYAML() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// MarshalJSON implements json.Marshaler.
func (r PriceRelation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
