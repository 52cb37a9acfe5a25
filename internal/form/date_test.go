package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "1 de enero de 2025"},
		{time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), "29 de febrero de 2024"},
		{time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC), "9 de septiembre de 2026"},
		{time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC), "31 de diciembre de 2026"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in))
	}
}
