package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{name: "Defaults size", in: PageRequest{}, want: PageRequest{Size: DefaultPageSize}},
		{name: "Clamps negative page", in: PageRequest{Page: -2, Size: 10}, want: PageRequest{Size: 10}},
		{name: "Caps size", in: PageRequest{Page: 1, Size: 10_000}, want: PageRequest{Page: 1, Size: MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 40, PageRequest{Page: 2, Size: 20}.Offset())
	assert.Equal(t, 0, PageRequest{Page: -1, Size: 20}.Offset())
}

func TestNewPage(t *testing.T) {
	page := NewPage[int](nil, 0, PageRequest{Page: 3})

	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, DefaultPageSize, page.Size)
}
