package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

func catalog() []models.Symptom {
	return []models.Symptom{
		{ID: 1, Name: "fever"},
		{ID: 2, Name: "cough"},
		{ID: 3, Name: "headache"},
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "single", line: "1", want: []string{"fever"}},
		{name: "multiple with spaces", line: "1, 3", want: []string{"fever", "headache"}},
		{name: "duplicates collapse", line: "2,2,2", want: []string{"cough"}},
		{name: "empty line", line: "", wantErr: true},
		{name: "only commas", line: ",,,", wantErr: true},
		{name: "out of range", line: "4", wantErr: true},
		{name: "zero", line: "0", wantErr: true},
		{name: "not a number", line: "fever", wantErr: true},
		{name: "one bad entry rejects the line", line: "1,oops", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.line, catalog())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
