package java

import (
	"encoding/json"
	"net/url"

	"gopkg.in/yaml.v3"
)

// URLString is a URL that encodes as a plain string in model files.
type URLString struct {
	url.URL
}

func (u URLString) IsZero() bool {
	return u.URL.Scheme == "" && u.URL.Host == "" && u.URL.Path == ""
}

func (u URLString) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(u.URL.String())
}

func (u *URLString) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*u = URLString{}
		return nil
	}
	return u.parse(*s)
}

func (u URLString) MarshalYAML() (interface{}, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.URL.String(), nil
}

func (u *URLString) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*u = URLString{}
		return nil
	}
	return u.parse(s)
}

func (u *URLString) parse(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}
	u.URL = *parsed
	return nil
}
