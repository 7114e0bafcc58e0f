package tlsmaterial

import (
	"crypto/tls"
	"net"

	log "github.com/sirupsen/logrus"
)

// LogPeerCertificate writes the registry's leaf TLS certificate details to
// the log at connect time, for audit trails and debugging handshake issues.
func LogPeerCertificate(conn net.Conn) {
	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		log.Trace("connection is not a *tls.Conn, nothing to log")
		return
	}
	state := tlsConn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return
	}
	leaf := state.PeerCertificates[0]
	log.Infof("registry certificate: serial=%v subject=%v issuer=%v", leaf.SerialNumber, leaf.Subject, leaf.Issuer)
}
