package content

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// imageSizePreference is the order size variants are tried in
var imageSizePreference = []string{"large", "medium", "full"}

// ImageField resolves an ACF image field to a URL. ACF may return the field as
// a bare URL string or as an image object depending on its return format:
//
//	"https://cdn.example.com/hero.jpg"
//	{"url": "...", "sizes": {"large": "...", "medium": "..."}}
//
// A non-empty string is returned as-is, then the object's url, then the
// large, medium and full size variants. Anything else yields "".
func ImageField(acf json.RawMessage, field string) string {
	if len(acf) == 0 || field == "" || !gjson.ValidBytes(acf) {
		return ""
	}

	value := gjson.GetBytes(acf, gjson.Escape(field))
	switch {
	case value.Type == gjson.String:
		return value.String()

	case value.IsObject():
		url := value.Get("url")
		if s := nonEmptyString(url); s != "" {
			return s
		}
		sizes := value.Get("sizes")
		if !sizes.Exists() {
			return ""
		}
		for _, size := range imageSizePreference {
			if s := nonEmptyString(sizes.Get(size)); s != "" {
				return s
			}
		}
		return nonEmptyString(url)
	}

	return ""
}

// Field returns the raw JSON of a custom field, or "" when absent
func Field(acf json.RawMessage, field string) string {
	if len(acf) == 0 || field == "" {
		return ""
	}
	value := gjson.GetBytes(acf, gjson.Escape(field))
	if !value.Exists() {
		return ""
	}
	return value.Raw
}

func nonEmptyString(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.String()
}

// Fields decodes the custom fields into a map. ACF sends false or [] for
// records without field groups; those yield nil.
func Fields(acf json.RawMessage) map[string]any {
	if len(acf) == 0 || !gjson.ValidBytes(acf) {
		return nil
	}
	parsed := gjson.ParseBytes(acf)
	if !parsed.IsObject() {
		return nil
	}
	fields, _ := parsed.Value().(map[string]any)
	return fields
}
