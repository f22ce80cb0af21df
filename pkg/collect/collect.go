// Package collect fetches the three show reports from a Cisco IOS switch
// over SSH.
package collect

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
	"github.com/newtron-network/ios2xlsx/pkg/textio"
	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// Show commands, one SSH exec session each. IOS does not page output on
// exec channels, so no "terminal length 0" is needed.
const (
	CmdRunningConfig   = "show running-config"
	CmdInterfaceStatus = "show interfaces status"
	CmdCDPNeighbors    = "show cdp neighbors detail"
)

// DefaultTimeout bounds the TCP dial and SSH handshake.
const DefaultTimeout = 10 * time.Second

// Config describes how to reach the switch.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration

	// KnownHostsFile enables host key checking; empty accepts any key.
	KnownHostsFile string
}

func (c Config) addr() string {
	port := c.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// Runner executes one command on the device and returns its output.
type Runner interface {
	Run(cmd string) (string, error)
	Close() error
}

// DialFunc opens a Runner for cfg.
type DialFunc func(ctx context.Context, cfg Config) (Runner, error)

// Reports holds the raw text of the three show commands.
type Reports struct {
	RunningConfig   string
	InterfaceStatus string
	CDPNeighbors    string
}

// Inputs splits each report into lines for ifreport.Build.
func (r *Reports) Inputs() ifreport.Inputs {
	return ifreport.Inputs{
		RunningConfig:   textio.SplitLines(r.RunningConfig),
		InterfaceStatus: textio.SplitLines(r.InterfaceStatus),
		CDPNeighbors:    textio.SplitLines(r.CDPNeighbors),
	}
}

// Save writes the three reports into dir as <prefix>-<report>.txt and
// returns the paths written.
func (r *Reports) Save(dir, prefix string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	files := []struct {
		kind string
		text string
	}{
		{ifreport.ReportRunningConfig, r.RunningConfig},
		{ifreport.ReportInterfaceStatus, r.InterfaceStatus},
		{ifreport.ReportCDPNeighbors, r.CDPNeighbors},
	}
	var paths []string
	for _, f := range files {
		p := filepath.Join(dir, prefix+"-"+f.kind+".txt")
		if err := os.WriteFile(p, []byte(f.text), 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Collector runs the show commands against one switch.
type Collector struct {
	cfg  Config
	dial DialFunc
}

// New returns a Collector that dials over SSH.
func New(cfg Config) *Collector {
	return &Collector{cfg: cfg, dial: DialSSH}
}

// NewWithDialer returns a Collector using dial instead of SSH.
func NewWithDialer(cfg Config, dial DialFunc) *Collector {
	return &Collector{cfg: cfg, dial: dial}
}

// Collect connects and runs the three show commands in turn. Errors wrap
// util.ErrCollectFailed. Cancelling ctx closes the connection.
func (c *Collector) Collect(ctx context.Context) (*Reports, error) {
	log := util.WithHost(c.cfg.Host)

	runner, err := c.dial(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to %s: %w", util.ErrCollectFailed, c.cfg.addr(), err)
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			runner.Close()
		case <-stop:
		}
	}()
	defer runner.Close()

	reports := &Reports{}
	steps := []struct {
		cmd string
		dst *string
	}{
		{CmdRunningConfig, &reports.RunningConfig},
		{CmdInterfaceStatus, &reports.InterfaceStatus},
		{CmdCDPNeighbors, &reports.CDPNeighbors},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", util.ErrCollectFailed, err)
		}
		out, err := runner.Run(s.cmd)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			return nil, fmt.Errorf("%w: %s on %s: %w", util.ErrCollectFailed, s.cmd, c.cfg.Host, err)
		}
		log.Debugf("%s: %d bytes", s.cmd, len(out))
		*s.dst = out
	}
	return reports, nil
}

// sshRunner runs each command in its own session on a shared client.
type sshRunner struct {
	client *ssh.Client
}

func (r *sshRunner) Run(cmd string) (string, error) {
	session, err := r.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("SSH session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(cmd)
	if err != nil {
		return string(output), fmt.Errorf("SSH exec '%s': %w", cmd, err)
	}
	return string(output), nil
}

func (r *sshRunner) Close() error {
	return r.client.Close()
}

// DialSSH connects with password or keyboard-interactive auth.
func DialSSH(ctx context.Context, cfg Config) (Runner, error) {
	hostKey := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHostsFile != "" {
		cb, err := knownhosts.New(cfg.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("loading known hosts: %w", err)
		}
		hostKey = cb
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	config := &ssh.ClientConfig{
		User: cfg.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(cfg.Password),
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = cfg.Password
				}
				return answers, nil
			}),
		},
		HostKeyCallback: hostKey,
		Timeout:         timeout,
	}

	addr := cfg.addr()
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("SSH dial %s: %w", addr, err)
	}
	if deadline, ok := dialCtx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("SSH handshake %s: %w", addr, err)
	}
	conn.SetDeadline(time.Time{})

	return &sshRunner{client: ssh.NewClient(c, chans, reqs)}, nil
}
