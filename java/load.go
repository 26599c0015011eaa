package java

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedModelFormat = errors.New("unsupported model format")

// ModelSet is the content of one or more model files.
type ModelSet struct {
	Packages []*PackageInfoModel `json:"packages,omitempty" yaml:"packages,omitempty"`
	Classes  []*ClassModel       `json:"classes,omitempty" yaml:"classes,omitempty"`
}

func (s *ModelSet) Merge(other *ModelSet) {
	if other == nil {
		return
	}
	s.Packages = append(s.Packages, other.Packages...)
	s.Classes = append(s.Classes, other.Classes...)
}

// Index builds an Index over the set.
func (s *ModelSet) Index() *Index {
	return NewIndex(s.Classes, s.Packages)
}

// LoadModels reads model files. A .json file holds a class, an array of
// classes or a {"packages": ..., "classes": ...} bundle. A .yaml or .yml file
// holds a stream of documents, each of which may be any of those forms.
func LoadModels(paths ...string) (*ModelSet, error) {
	set := &ModelSet{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading models: %w", err)
		}
		var part *ModelSet
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			part, err = DecodeJSONModels(data)
		case ".yaml", ".yml":
			part, err = DecodeYAMLModels(data)
		default:
			return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedModelFormat)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		set.Merge(part)
	}
	return set, nil
}

func DecodeJSONModels(data []byte) (*ModelSet, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &ModelSet{}, nil
	}
	if data[0] == '[' {
		var classes []*ClassModel
		if err := json.Unmarshal(data, &classes); err != nil {
			return nil, fmt.Errorf("decoding class list: %w", err)
		}
		return &ModelSet{Classes: classes}, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("decoding models: %w", err)
	}
	if isBundle(func(k string) bool { _, ok := keys[k]; return ok }) {
		var set ModelSet
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("decoding model bundle: %w", err)
		}
		return &set, nil
	}
	var class ClassModel
	if err := json.Unmarshal(data, &class); err != nil {
		return nil, fmt.Errorf("decoding class: %w", err)
	}
	return &ModelSet{Classes: []*ClassModel{&class}}, nil
}

func DecodeYAMLModels(data []byte) (*ModelSet, error) {
	set := &ModelSet{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding models: %w", err)
		}
		if len(doc.Content) == 0 {
			continue
		}
		root := doc.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			var classes []*ClassModel
			if err := root.Decode(&classes); err != nil {
				return nil, fmt.Errorf("decoding class list: %w", err)
			}
			set.Classes = append(set.Classes, classes...)
		case yaml.MappingNode:
			if isBundle(func(k string) bool { return hasKey(root, k) }) {
				var part ModelSet
				if err := root.Decode(&part); err != nil {
					return nil, fmt.Errorf("decoding model bundle: %w", err)
				}
				set.Merge(&part)
				continue
			}
			var class ClassModel
			if err := root.Decode(&class); err != nil {
				return nil, fmt.Errorf("decoding class: %w", err)
			}
			set.Classes = append(set.Classes, &class)
		default:
			return nil, fmt.Errorf("line %d: expected a mapping or a list", root.Line)
		}
	}
	return set, nil
}

func isBundle(has func(string) bool) bool {
	return !has("name") && (has("classes") || has("packages"))
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
