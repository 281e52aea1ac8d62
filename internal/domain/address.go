package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Address адрес агендамента: сервер присылает либо строку, либо объект
type Address struct {
	Text string `json:"-"`

	Street       string   `json:"logradouro,omitempty"`
	Number       string   `json:"numero,omitempty"`
	Complement   string   `json:"complemento,omitempty"`
	Neighborhood string   `json:"bairro,omitempty"`
	City         string   `json:"cidade,omitempty"`
	State        string   `json:"uf,omitempty"`
	PostalCode   string   `json:"cep,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type addressFields Address

func (a *Address) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Address{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*a = Address{Text: text}
		return nil
	}

	var fields addressFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*a = Address(fields)
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	if a.Text != "" {
		return json.Marshal(a.Text)
	}
	if a.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(addressFields(a))
}

func (a Address) IsZero() bool {
	return a.Text == "" && a.Street == "" && a.Number == "" && a.Complement == "" &&
		a.Neighborhood == "" && a.City == "" && a.State == "" && a.PostalCode == "" &&
		a.Latitude == nil && a.Longitude == nil
}

// Format "Rua A, 10, Centro, São Paulo - SP, 01000-000".
// Строковый адрес возвращается без изменений, пустые части пропускаются.
func (a Address) Format() string {
	if a.Text != "" {
		return a.Text
	}

	parts := make([]string, 0, 4)
	if street := joinNonEmpty(", ", a.Street, a.Number); street != "" {
		parts = append(parts, street)
	}
	if a.Neighborhood != "" {
		parts = append(parts, a.Neighborhood)
	}
	if city := joinNonEmpty(" - ", a.City, a.State); city != "" {
		parts = append(parts, city)
	}
	if a.PostalCode != "" {
		parts = append(parts, a.PostalCode)
	}

	return strings.Join(parts, ", ")
}

func joinNonEmpty(sep string, values ...string) string {
	nonEmpty := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	return strings.Join(nonEmpty, sep)
}
