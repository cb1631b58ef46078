package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlagDefaults verifies the CLI flags exist with their documented
// defaults.
func TestFlagDefaults(t *testing.T) {
	require.NotNil(t, videoPath)
	assert.Equal(t, "", *videoPath, "video path has no default; it is required")

	require.NotNil(t, methodList)
	assert.Equal(t, "template,csrt,kcf,mosse", *methodList, "all four methods run by default")

	require.NotNil(t, chartPath)
	assert.Equal(t, "", *chartPath)

	require.NotNil(t, dbPath)
	assert.Equal(t, "", *dbPath)
}

func TestParseMethods(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    []string
		wantErr string
	}{
		{
			name: "default list",
			list: "template,csrt,kcf,mosse",
			want: []string{"template", "csrt", "kcf", "mosse"},
		},
		{
			name: "subset keeps requested order",
			list: "kcf,template",
			want: []string{"kcf", "template"},
		},
		{
			name: "duplicates dropped",
			list: "csrt,csrt,csrt",
			want: []string{"csrt"},
		},
		{
			name: "whitespace and case tolerated",
			list: " CSRT , Template ",
			want: []string{"csrt", "template"},
		},
		{
			name:    "unknown method",
			list:    "template,medianflow",
			wantErr: "unknown tracking method",
		},
		{
			name:    "empty list",
			list:    "",
			wantErr: "no tracking methods requested",
		},
		{
			name:    "only separators",
			list:    ",,",
			wantErr: "no tracking methods requested",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMethods(tt.list)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
