package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

// EncodeDocuments serialises the collection for the documents key.
func EncodeDocuments(docs []domain.Document) (string, error) {
	if docs == nil {
		docs = []domain.Document{}
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("encode documents: %w", err)
	}
	return string(b), nil
}

// DecodeDocuments parses the value of the documents key.
// A JSON null decodes to an empty collection.
func DecodeDocuments(value string) ([]domain.Document, error) {
	var docs []domain.Document
	if err := json.Unmarshal([]byte(value), &docs); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return docs, nil
}

// EncodeActiveID serialises the active id as a JSON string.
func EncodeActiveID(id string) string {
	b, _ := json.Marshal(id)
	return string(b)
}

// DecodeActiveID parses the value of the active id key.
func DecodeActiveID(value string) (string, error) {
	var id string
	if err := json.Unmarshal([]byte(value), &id); err != nil {
		return "", fmt.Errorf("decode active id: %w", err)
	}
	return id, nil
}

// EncodeBool serialises a preference flag.
func EncodeBool(v bool) string {
	return strconv.FormatBool(v)
}

// DecodeBool parses a preference flag.
func DecodeBool(value string) (bool, error) {
	var v bool
	if err := json.Unmarshal([]byte(value), &v); err != nil {
		return false, fmt.Errorf("decode flag: %w", err)
	}
	return v, nil
}
