package net

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutgoingIPIsRoutableIPv4(t *testing.T) {
	ip, err := OutgoingIP()
	require.NoError(t, err)

	parsed := net.ParseIP(ip)
	require.NotNil(t, parsed, "share link address must parse: %q", ip)
	assert.NotNil(t, parsed.To4())
}
