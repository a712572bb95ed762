package xpf_test

import (
	"testing"

	"github.com/AndreiMuntea/xpf"
)

func TestInit_IdempotentAndSafe(t *testing.T) {
	xpf.Init()
	xpf.Init() // must not panic or block on a second call
	xpf.Shutdown()
}
