package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Set(t *testing.T) {
	var rec Record
	rec.Set(FieldIndex, "1")
	rec.Set(FieldName, "allweather - TRANSWEATHER")
	rec.Set(FieldCategory, "Multi-weather")
	rec.Set(FieldSize, "~19000 images")
	rec.Set(FieldDescription, "Weather dataset.")
	rec.Set(FieldMainLink, "https://example.com/tw")
	rec.Set("LICENSE", "MIT")

	assert.Equal(t, Record{
		Index:       "1",
		Name:        "allweather - TRANSWEATHER",
		Category:    "Multi-weather",
		Size:        "~19000 images",
		Description: "Weather dataset.",
		MainLink:    "https://example.com/tw",
		Extra:       map[string]string{"LICENSE": "MIT"},
	}, rec)
}

func TestRecord_Field(t *testing.T) {
	rec := Record{Index: "3", MainLink: "https://example.com", Extra: map[string]string{"YEAR": "2019"}}

	assert.Equal(t, "3", rec.Field(FieldIndex))
	assert.Equal(t, "https://example.com", rec.Field(FieldMainLink))
	assert.Equal(t, "2019", rec.Field("YEAR"))
	assert.Equal(t, "", rec.Field(FieldSize))
	assert.Equal(t, "", rec.Field("MISSING"))
}

func TestRecord_Clone(t *testing.T) {
	rec := Record{Index: "1", Extra: map[string]string{"YEAR": "2019"}}
	clone := rec.Clone()
	clone.Extra["YEAR"] = "2020"

	assert.Equal(t, "2019", rec.Extra["YEAR"])

	bare := Record{Index: "2"}
	assert.Nil(t, bare.Clone().Extra)
}

func TestPageOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    PageOptions
		wantErr string
	}{
		{name: "defaults", opts: *DefaultPageOptions()},
		{name: "negative limit", opts: PageOptions{Limit: -1}, wantErr: "limit cannot be negative"},
		{name: "negative offset", opts: PageOptions{Offset: -2}, wantErr: "offset cannot be negative"},
		{name: "above max", opts: PageOptions{Limit: 20, MaxLimit: 10}, wantErr: "exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPageOptions_Apply(t *testing.T) {
	records := []Record{{Index: "1"}, {Index: "2"}, {Index: "3"}}

	page := (&PageOptions{Limit: 2}).Apply(records)
	assert.Len(t, page.Records, 2)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	page = (&PageOptions{Offset: 2}).Apply(records)
	assert.Equal(t, []Record{{Index: "3"}}, page.Records)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	page = (&PageOptions{}).Apply(records)
	assert.Len(t, page.Records, 3)

	// The returned page does not alias the input
	page.Records[0].Index = "changed"
	assert.Equal(t, "1", records[0].Index)
}
