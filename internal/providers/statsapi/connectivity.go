package statsapi

import (
	"net"
	"time"
)

const (
	probeAddr    = "8.8.8.8:53"
	probeTimeout = 3 * time.Second
)

// checkConnectivity reports whether the open internet is reachable by
// attempting a TCP connect to a well-known resolver. The result is used
// once per fetch attempt and never stored.
func checkConnectivity() bool {
	conn, err := net.DialTimeout("tcp", probeAddr, probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
