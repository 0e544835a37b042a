package shop

import (
	"encoding/json"
	"errors"
	"sort"
)

var requiredFields = []string{"id", "product", "price"}

// MissingFieldError reports required fields that are absent or JSON null.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "Please provide 'id', 'product', and 'price'"
}

// UnexpectedFieldError reports fields beyond the allowed set.
type UnexpectedFieldError struct {
	Fields []string
}

func (e *UnexpectedFieldError) Error() string {
	return "Only 'id', 'product', and 'price' are allowed"
}

// ValidateItem checks that raw is a JSON object carrying exactly the fields
// id, product and price, and decodes it into an Item. Presence is checked
// explicitly: an absent key or a JSON null counts as missing, while zero
// values (id 0, empty price) are accepted. Malformed JSON and type mismatches
// come back as plain errors for the handler to treat as unexpected.
func ValidateItem(raw []byte) (Item, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return Item{}, err
	}
	if body == nil {
		return Item{}, errors.New("request body is not a JSON object")
	}

	var missing []string
	for _, f := range requiredFields {
		v, ok := body[f]
		if !ok || string(v) == "null" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return Item{}, &MissingFieldError{Fields: missing}
	}

	var extra []string
	for k := range body {
		if !isRequiredField(k) {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return Item{}, &UnexpectedFieldError{Fields: extra}
	}

	var it Item
	if err := json.Unmarshal(raw, &it); err != nil {
		return Item{}, err
	}
	return it, nil
}

func isRequiredField(name string) bool {
	for _, f := range requiredFields {
		if name == f {
			return true
		}
	}
	return false
}
