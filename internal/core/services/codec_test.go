package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blankpage/internal/core/domain"
)

func TestEncodeDocuments_Format(t *testing.T) {
	docs := []domain.Document{{ID: "a", Content: "<b>x</b>", LastModified: 123}}

	got, err := EncodeDocuments(docs)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","content":"<b>x</b>","lastModified":123}]`, got)
}

func TestEncodeDocuments_NilIsEmptyArray(t *testing.T) {
	got, err := EncodeDocuments(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestDecodeDocuments(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []domain.Document
		wantErr bool
	}{
		{name: "array", value: `[{"id":"a","content":"x","lastModified":5}]`, want: []domain.Document{{ID: "a", Content: "x", LastModified: 5}}},
		{name: "empty array", value: `[]`, want: []domain.Document{}},
		{name: "null", value: `null`, want: nil},
		{name: "unknown fields ignored", value: `[{"id":"a","title":"t"}]`, want: []domain.Document{{ID: "a"}}},
		{name: "not json", value: `{{`, wantErr: true},
		{name: "wrong shape", value: `{"id":"a"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDocuments(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActiveIDCodec(t *testing.T) {
	enc := EncodeActiveID(`we"ird\id`)

	got, err := DecodeActiveID(enc)

	require.NoError(t, err)
	assert.Equal(t, `we"ird\id`, got)
	assert.Equal(t, `"abc"`, EncodeActiveID("abc"))

	_, err = DecodeActiveID("abc")
	assert.Error(t, err)
}

func TestBoolCodec(t *testing.T) {
	assert.Equal(t, "true", EncodeBool(true))
	assert.Equal(t, "false", EncodeBool(false))

	v, err := DecodeBool("true")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = DecodeBool(`"yes"`)
	assert.Error(t, err)
}
