package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormNumberAcceptsStringsAndNumbers(t *testing.T) {
	tests := []struct {
		name string
		body string
		want FormNumber
	}{
		{name: "string", body: `{"quantity":"12.5"}`, want: "12.5"},
		{name: "number", body: `{"quantity":12.5}`, want: "12.5"},
		{name: "integer", body: `{"quantity":3}`, want: "3"},
		{name: "empty string", body: `{"quantity":""}`, want: ""},
		{name: "null", body: `{"quantity":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
		{name: "garbage string kept raw", body: `{"quantity":"lots"}`, want: "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form UsageForm
			require.NoError(t, json.Unmarshal([]byte(tt.body), &form))
			assert.Equal(t, tt.want, form.Quantity)
		})
	}
}

func TestFormNumberRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"quantity":true}`, `{"quantity":[1]}`, `{"quantity":{"v":1}}`} {
		var form UsageForm
		assert.Error(t, json.Unmarshal([]byte(body), &form), body)
	}
}
