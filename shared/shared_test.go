package shared_test

import (
	"testing"

	"eventbook/shared"
	"eventbook/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		parts  []string
		want   string
	}{
		{name: "prefix only", prefix: "limiter", want: "limiter"},
		{name: "with parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl/8.0"}, want: "limiter:10.0.0.1:curl/8.0"},
		{name: "blank parts skipped", prefix: "limiter", parts: []string{"", " ", "10.0.0.1"}, want: "limiter:10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(12), "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, dto.FilterGroupOperatorAnd, filter.Operator)
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(12)}, args)
}
