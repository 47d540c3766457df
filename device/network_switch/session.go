// Package network_switch drives the CLI of one switch: session lifecycle,
// the command fetches of a collection run, and the ARP fetch against the
// layer3 device.
package network_switch

import (
	"net"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"

	"inventory-backend/models"
)

const defaultSSHPort = 22

// Session is one live CLI connection.
type Session interface {
	Send(command string) (string, error)
	Close() error
}

// Dialer opens sessions; tests swap in a fake.
type Dialer interface {
	Connect(conn models.CLIConnection) (Session, error)
}

type SSHDialer struct {
	Timeout time.Duration
}

func NewSSHDialer() SSHDialer {
	return SSHDialer{Timeout: 10 * time.Second}
}

func (d SSHDialer) Connect(conn models.CLIConnection) (Session, error) {
	port := conn.Port
	if port == 0 {
		port = defaultSSHPort
	}
	cfg := &ssh.ClientConfig{
		User:            conn.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(conn.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         d.Timeout,
	}
	client, err := ssh.Dial("tcp", net.JoinHostPort(conn.IP, strconv.Itoa(port)), cfg)
	if err != nil {
		return nil, err
	}
	return &sshSession{client: client}, nil
}

type sshSession struct {
	client *ssh.Client
}

// Send runs one exec command. IOS SSH accepts one command per exec channel,
// so each Send opens a fresh channel on the shared connection.
func (s *sshSession) Send(command string) (string, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()

	out, err := sess.CombinedOutput(command)
	return string(out), err
}

func (s *sshSession) Close() error {
	return s.client.Close()
}
