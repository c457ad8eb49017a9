package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanReadableSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{50 << 20, "50 MB"},
		{3 << 30, "3 GB"},
		{1 << 40, "1 TB"},
		{2048 << 40, "2048 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanReadableSize(tt.bytes))
		})
	}
}
