package xid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndreiMuntea/xpf/internal/xid"
)

func TestNew_ProducesDistinctNonNilIDs(t *testing.T) {
	a := xid.New()
	b := xid.New()

	assert.NotEqual(t, xid.Nil, a)
	assert.NotEqual(t, a, b)
}
