package kbavl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_ParseRecord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		wantErr bool
	}{
		{
			name: "well formed",
			line: "dog\tDogs are loyal.\t0.92",
			want: Record{Term: "dog", Statement: "Dogs are loyal.", Score: "0.92"},
		},
		{
			name: "term with spaces",
			line: "sea turtle\tSea turtles lay eggs.\t1.0",
			want: Record{Term: "sea turtle", Statement: "Sea turtles lay eggs.", Score: "1.0"},
		},
		{
			name: "empty statement",
			line: "cat\t\t0.5",
			want: Record{Term: "cat", Statement: "", Score: "0.5"},
		},
		{
			name:    "two fields",
			line:    "cat\tCats purr.",
			wantErr: true,
		},
		{
			name:    "four fields",
			line:    "cat\tCats purr.\t0.5\textra",
			wantErr: true,
		},
		{
			name:    "no tab",
			line:    "just a line",
			wantErr: true,
		},
		{
			name:    "empty term",
			line:    "\tstatement\t0.1",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.line)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedRecord))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.Line())
		})
	}
}

func Test_Record_String(t *testing.T) {
	r := Record{Term: "cat", Statement: "Cats purr.", Score: "0.5"}

	assert.Equal(t, "cat: Cats purr. (0.5)", r.String())
}

func Test_FirstField(t *testing.T) {
	assert.Equal(t, "cat", FirstField("cat\tCats purr.\t0.5"))
	assert.Equal(t, "no tab", FirstField("no tab"))
	assert.Equal(t, "", FirstField("\tleading"))
	assert.Equal(t, "", FirstField(""))
}
