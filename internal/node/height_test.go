package node

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeight(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int64
		wantErr error
	}{
		{name: "integer", out: "12345", want: 12345},
		{name: "zero", out: "0", want: 0},
		{name: "negative", out: "-1", want: -1},
		{name: "surrounding whitespace", out: "\n 2701348 \r\n", want: 2701348},
		{name: "max int64", out: strconv.FormatInt(math.MaxInt64, 10), want: math.MaxInt64},
		{name: "empty", out: "", wantErr: ErrMalformedOutput},
		{name: "not json", out: "not-json", wantErr: ErrSerialization},
		{name: "truncated object", out: `{"height":`, wantErr: ErrSerialization},
		{name: "string", out: `"12345"`, wantErr: ErrMalformedOutput},
		{name: "object", out: `{"height":1}`, wantErr: ErrMalformedOutput},
		{name: "null", out: "null", wantErr: ErrMalformedOutput},
		{name: "float", out: "12.5", wantErr: ErrMalformedOutput},
		{name: "exponent", out: "1e3", wantErr: ErrMalformedOutput},
		{name: "overflow", out: "9223372036854775808", wantErr: ErrMalformedOutput},
		{name: "two values", out: "1 2", wantErr: ErrMalformedOutput},
		{name: "trailing garbage", out: "12345abc", wantErr: ErrMalformedOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeight([]byte(tt.out))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrMalformedOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
