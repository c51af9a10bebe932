package nss

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seafloor/grouper/internal/resolve"
	"github.com/seafloor/grouper/internal/wire"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusSuccess},
		{"not found", resolve.ErrNotFound, StatusNotFound},
		{"short buffer", wire.ErrShortBuffer, StatusOutOfRange},
		{"ceiling", resolve.ErrCeilingReached, StatusLimitReached},
		{"wrapped short buffer", fmt.Errorf("next: %w", wire.ErrShortBuffer), StatusOutOfRange},
		{"store failure", errors.New("disk on fire"), StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SUCCESS", StatusSuccess.String())
	assert.Equal(t, "NOTFOUND", StatusNotFound.String())
	assert.Equal(t, "UNAVAIL", StatusUnavailable.String())
	assert.Equal(t, "TRYAGAIN/OUT_OF_RANGE", StatusOutOfRange.String())
	assert.Equal(t, "TRYAGAIN/LIMIT_REACHED", StatusLimitReached.String())
}

func TestStatusOK(t *testing.T) {
	assert.True(t, StatusSuccess.OK())
	assert.False(t, StatusNotFound.OK())
	assert.False(t, StatusOutOfRange.OK())
}
