package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1400 * time.Millisecond, "1.4s"},
		{59 * time.Second, "59.0s"},
		{2*time.Minute + 5*time.Second, "2m5s"},
		{time.Hour + 12*time.Minute, "1h12m"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatDuration(c.in), "input %s", c.in)
	}
}
