// Command sftp-server serves an in-memory filesystem over SFTP.
//
// By default it speaks the protocol on stdin/stdout, so it can be used as
// a separate-process subsystem by an ssh server. With --listen it runs its
// own minimal SSH server and serves the sftp subsystem on every session
// channel.
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"

	kfs "github.com/kr/fs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh"

	"github.com/driftware/sftp"
)

func main() {
	var (
		listenAddr string
		preload    string
		hostKey    string
		password   string
		verbose    bool
	)

	pflag.StringVarP(&listenAddr, "listen", "l", "", "serve SSH on this address instead of stdin/stdout")
	pflag.StringVar(&preload, "preload", "", "seed the in-memory filesystem from this directory")
	pflag.StringVar(&hostKey, "host-key", "", "host key file; an ephemeral key is generated when empty")
	pflag.StringVar(&password, "password", "", "require this password; any client is accepted when empty")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	pflag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	memfs := sftp.NewMemFS()
	if preload != "" {
		if err := preloadDir(memfs, preload, log); err != nil {
			log.WithError(err).Fatal("preload failed")
		}
	}

	ctx := context.Background()

	if listenAddr == "" {
		srv := sftp.NewServer(stdioStream{}, memfs, sftp.WithServerLogger(log))
		if err := srv.Serve(ctx); err != nil {
			log.WithError(err).Fatal("sftp server completed with error")
		}
		return
	}

	if err := listenAndServe(ctx, listenAddr, hostKey, password, memfs, log); err != nil {
		log.WithError(err).Fatal("ssh server completed with error")
	}
}

// stdioStream adapts the process's stdin/stdout into the bidirectional
// stream the dispatcher expects.
type stdioStream struct{}

func (stdioStream) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioStream) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdioStream) Close() error {
	os.Stdin.Close()
	return os.Stdout.Close()
}

// preloadDir walks root and mirrors every file and directory into fs.
func preloadDir(fs *sftp.MemFS, root string, log logrus.FieldLogger) error {
	walker := kfs.Walk(root)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			log.WithError(err).WithField("path", walker.Path()).Warn("skipping unreadable path")
			continue
		}

		rel, err := filepath.Rel(root, walker.Path())
		if err != nil || rel == "." {
			continue
		}
		name := "/" + filepath.ToSlash(rel)

		stat := walker.Stat()
		if stat.IsDir() {
			if err := fs.PutDir(name, uint32(stat.Mode().Perm())); err != nil {
				return err
			}
			continue
		}

		data, err := ioutil.ReadFile(walker.Path())
		if err != nil {
			log.WithError(err).WithField("path", walker.Path()).Warn("skipping unreadable file")
			continue
		}

		if err := fs.Put(name, data, uint32(stat.Mode().Perm())); err != nil {
			return err
		}
	}

	return nil
}

func listenAndServe(ctx context.Context, addr, hostKey, password string, handler sftp.ServerHandler, log logrus.FieldLogger) error {
	config := &ssh.ServerConfig{}

	if password == "" {
		config.NoClientAuth = true
	} else {
		config.PasswordCallback = func(_ ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if string(pass) != password {
				return nil, errAuthFailed
			}
			return nil, nil
		}
	}

	signer, err := loadOrGenerateHostKey(hostKey)
	if err != nil {
		return err
	}
	config.AddHostKey(signer)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.WithField("addr", listener.Addr()).Info("listening")

	for {
		nConn, err := listener.Accept()
		if err != nil {
			return err
		}

		go handleConn(ctx, nConn, config, handler, log)
	}
}

type authError string

func (e authError) Error() string { return string(e) }

const errAuthFailed = authError("authentication failed")

func loadOrGenerateHostKey(path string) (ssh.Signer, error) {
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ssh.ParsePrivateKey(data)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return ssh.NewSignerFromKey(priv)
}

func handleConn(ctx context.Context, nConn net.Conn, config *ssh.ServerConfig, handler sftp.ServerHandler, log logrus.FieldLogger) {
	defer nConn.Close()

	sconn, chans, reqs, err := ssh.NewServerConn(nConn, config)
	if err != nil {
		log.WithError(err).Debug("handshake failed")
		return
	}
	defer sconn.Close()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		channel, requests, err := newChan.Accept()
		if err != nil {
			log.WithError(err).Debug("could not accept channel")
			continue
		}

		go handleSession(ctx, channel, requests, handler, log)
	}
}

// handleSession waits for the sftp subsystem request and hands the channel
// to the dispatcher. Any other request is refused.
func handleSession(ctx context.Context, channel ssh.Channel, requests <-chan *ssh.Request, handler sftp.ServerHandler, log logrus.FieldLogger) {
	for req := range requests {
		ok := req.Type == "subsystem" && len(req.Payload) > 4 && string(req.Payload[4:]) == "sftp"
		req.Reply(ok, nil)

		if ok {
			sftp.Run(ctx, channel, handler, sftp.WithServerLogger(log))
		}
	}
}
