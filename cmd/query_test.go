package main

import (
	"bytes"
	"testing"

	"github.com/adfharrison1/go-datasets/pkg/domain"
	"github.com/adfharrison1/go-datasets/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleRegistry() *registry.Registry {
	return registry.New([]domain.Record{
		{
			Index:       "1",
			Name:        "allweather - TRANSWEATHER",
			Category:    "Multi-weather",
			Size:        "~19000 images",
			Description: "Weather dataset.",
			MainLink:    "https://example.com/tw",
		},
		{
			Index:       "12",
			Name:        "UIEB",
			Category:    "Underwater",
			Description: "Real underwater images.",
		},
	})
}

func TestQuery_Run(t *testing.T) {
	var out bytes.Buffer
	q := query{pretty: "1", link: "1", search: "underwater"}

	require.NoError(t, q.run(&out, exampleRegistry()))

	expected := "[1] allweather - TRANSWEATHER | Multi-weather | Size: ~19000 images\n" +
		"Dataset URL: https://example.com/tw\n" +
		"Searching for 'underwater' datasets...\n" +
		"Found: UIEB (Index: 12)\n" +
		"------------------------------\n"
	assert.Equal(t, expected, out.String())
}

func TestQuery_Get(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, query{get: "12"}.run(&out, exampleRegistry()))

	assert.Contains(t, out.String(), `"NAME": "UIEB"`)
	assert.Contains(t, out.String(), `"INDEX": "12"`)
}

func TestQuery_NoHits(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, query{search: "thermal"}.run(&out, exampleRegistry()))
	assert.Contains(t, out.String(), "No datasets found")
}

func TestQuery_Errors(t *testing.T) {
	var out bytes.Buffer

	err := query{link: "12"}.run(&out, exampleRegistry())
	assert.ErrorIs(t, err, registry.ErrMissingLink)

	err = query{pretty: "99"}.run(&out, exampleRegistry())
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestQuery_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, query{}.run(&out, exampleRegistry()))
	assert.Empty(t, out.String())
}

func TestLoadRegistry_RejectsMultiCharDelimiter(t *testing.T) {
	_, err := loadRegistry("datasets.csv", "", ";;")
	assert.Error(t, err)
}
