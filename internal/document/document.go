// Package document exposes a parsed YAML document as a generic value with
// typed accessors.
//
// Accessors never fail loudly: a lookup or conversion that does not match
// the underlying node returns ok == false, leaving it to the caller to turn
// the mismatch into a meaningful error.
package document

import (
	"bytes"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/romshelf/internal/errors"
)

// Tags of the YAML core schema that accessors check against.
const (
	tagStr  = "!!str"
	tagInt  = "!!int"
	tagBool = "!!bool"
	tagNull = "!!null"
)

// ErrDuplicateKey is returned by Parse when a mapping defines the same
// string key twice.
var ErrDuplicateKey = errors.New("duplicate mapping key")

// Value is one node of a parsed document.
type Value struct {
	node *yaml.Node
}

// Pair is one key/value entry of a mapping.
type Pair struct {
	Key   *Value
	Value *Value
}

// Parse parses data as a YAML document. Only the first document of a
// multi-document stream is used. Empty input yields a null value.
// A mapping that repeats a string key is rejected with ErrDuplicateKey.
func Parse(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}
	if err := checkDuplicateKeys(&root); err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}
	if root.Kind == 0 || len(bytes.TrimSpace(data)) == 0 {
		return &Value{node: &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull}}, nil
	}
	return wrap(&root), nil
}

// checkDuplicateKeys walks n and reports the first string key defined twice
// in the same mapping. Aliases are not followed; their anchors are checked
// where they are defined.
func checkDuplicateKeys(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode || k.ShortTag() != tagStr {
				continue
			}
			if first, ok := seen[k.Value]; ok {
				return errors.Wrapf(ErrDuplicateKey, "line %d: key %q already defined on line %d",
					k.Line, k.Value, first)
			}
			seen[k.Value] = k.Line
		}
	}
	for _, c := range n.Content {
		if err := checkDuplicateKeys(c); err != nil {
			return err
		}
	}
	return nil
}

// wrap resolves document and alias indirection.
func wrap(n *yaml.Node) *Value {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return &Value{node: n}
		}
	}
	return nil
}

// Line returns the 1-based line the value starts on, or 0 if unknown.
func (v *Value) Line() int {
	if v == nil {
		return 0
	}
	return v.node.Line
}

// Tag returns the resolved YAML tag, e.g. "!!str" or "!!map".
func (v *Value) Tag() string {
	if v == nil {
		return ""
	}
	return v.node.ShortTag()
}

// IsNull reports whether the value is an explicit or implicit null.
func (v *Value) IsNull() bool {
	return v == nil || (v.node.Kind == yaml.ScalarNode && v.node.ShortTag() == tagNull)
}

// AsString returns the value of a string scalar.
func (v *Value) AsString() (string, bool) {
	if !v.isScalar(tagStr) {
		return "", false
	}
	return v.node.Value, true
}

// AsBool returns the value of a boolean scalar.
func (v *Value) AsBool() (bool, bool) {
	if !v.isScalar(tagBool) {
		return false, false
	}
	var b bool
	if err := v.node.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}

// AsInt returns the value of an integer scalar. Integers that do not fit in
// an int64 are reported as not convertible.
func (v *Value) AsInt() (int64, bool) {
	if !v.isScalar(tagInt) {
		return 0, false
	}
	var i int64
	if err := v.node.Decode(&i); err != nil {
		return 0, false
	}
	return i, true
}

// AsUint8 returns the value of an integer scalar in [0,255].
// Out-of-range values are rejected rather than truncated.
func (v *Value) AsUint8() (uint8, bool) {
	i, ok := v.AsInt()
	if !ok || i < 0 || i > math.MaxUint8 {
		return 0, false
	}
	return uint8(i), true
}

// AsSequence returns the elements of a sequence.
func (v *Value) AsSequence() ([]*Value, bool) {
	if v == nil || v.node.Kind != yaml.SequenceNode {
		return nil, false
	}
	items := make([]*Value, 0, len(v.node.Content))
	for _, n := range v.node.Content {
		items = append(items, wrap(n))
	}
	return items, true
}

// AsMapping returns the entries of a mapping in document order.
// Merge keys ("<<") are not expanded.
func (v *Value) AsMapping() ([]Pair, bool) {
	if v == nil || v.node.Kind != yaml.MappingNode {
		return nil, false
	}
	content := v.node.Content
	pairs := make([]Pair, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		pairs = append(pairs, Pair{
			Key:   wrap(content[i]),
			Value: wrap(content[i+1]),
		})
	}
	return pairs, true
}

// Lookup returns the value stored under key in a mapping. String keys are
// unique within a parsed document.
func (v *Value) Lookup(key string) (*Value, bool) {
	pairs, ok := v.AsMapping()
	if !ok {
		return nil, false
	}
	for _, p := range pairs {
		if k, ok := p.Key.AsString(); ok && k == key {
			return p.Value, true
		}
	}
	return nil, false
}

func (v *Value) isScalar(tag string) bool {
	return v != nil && v.node.Kind == yaml.ScalarNode && v.node.ShortTag() == tag
}
