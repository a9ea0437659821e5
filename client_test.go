package sftp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sshfx "github.com/driftware/sftp/encoding/ssh/filexfer"
)

// recordingClientHandler records which response types were dispatched.
type recordingClientHandler struct {
	UnimplementedClientHandler

	versions []uint32
	handles  []string
	data     [][]byte
	names    []int
	statuses []sshfx.Status
	attrs    int

	statusErr error
}

func (h *recordingClientHandler) Version(_ context.Context, resp *sshfx.VersionPacket) error {
	h.versions = append(h.versions, resp.Version)
	return nil
}

func (h *recordingClientHandler) Handle(_ context.Context, resp *sshfx.HandlePacket) error {
	h.handles = append(h.handles, resp.Handle)
	return nil
}

func (h *recordingClientHandler) Data(_ context.Context, resp *sshfx.DataPacket) error {
	h.data = append(h.data, append([]byte(nil), resp.Data...))
	return nil
}

func (h *recordingClientHandler) Name(_ context.Context, resp *sshfx.NamePacket) error {
	h.names = append(h.names, len(resp.Entries))
	return nil
}

func (h *recordingClientHandler) Attrs(_ context.Context, _ *sshfx.AttrsPacket) error {
	h.attrs++
	return nil
}

func (h *recordingClientHandler) Status(_ context.Context, resp *sshfx.StatusPacket) error {
	h.statuses = append(h.statuses, resp.StatusCode)
	return h.statusErr
}

// startClient runs a client session over one side of a net.Pipe and hands
// the test the server side, plus a wait function for loop termination.
func startClient(t *testing.T, handler ClientHandler, options ...ClientOption) (net.Conn, func()) {
	t.Helper()

	server, client := net.Pipe()

	done := make(chan struct{})
	c := NewClient(client, handler, options...)
	go func() {
		defer close(done)
		_ = c.Serve(context.Background())
	}()

	wait := func() {
		server.Close()
		<-done
	}
	t.Cleanup(wait)

	return server, wait
}

func TestClientDispatch(t *testing.T) {
	handler := &recordingClientHandler{}
	server, wait := startClient(t, handler)

	responses := []binaryMarshaler{
		&sshfx.VersionPacket{Version: 3},
		&sshfx.HandlePacket{RequestID: 1, Handle: "h1"},
		&sshfx.DataPacket{RequestID: 2, Data: []byte("payload")},
		&sshfx.NamePacket{RequestID: 3, Entries: []*sshfx.NameEntry{
			{Filename: "f", Longname: "f"},
		}},
		&sshfx.AttrsPacket{RequestID: 4},
		sshfx.NewStatus(5, sshfx.StatusOK),
	}

	for _, resp := range responses {
		sendRequest(t, server, resp)
	}

	wait()

	assert.Equal(t, []uint32{3}, handler.versions)
	assert.Equal(t, []string{"h1"}, handler.handles)
	assert.Equal(t, [][]byte{[]byte("payload")}, handler.data)
	assert.Equal(t, []int{1}, handler.names)
	assert.Equal(t, []sshfx.Status{sshfx.StatusOK}, handler.statuses)
	assert.Equal(t, 1, handler.attrs)
}

// The client loop is write-free: even a failing handler produces no wire
// traffic back at the server.
func TestClientWritesNothing(t *testing.T) {
	errCh := make(chan error, 1)

	handler := &recordingClientHandler{statusErr: sshfx.StatusFailure}
	server, _ := startClient(t, handler, WithHandlerError(func(err error) {
		errCh <- err
	}))

	sendRequest(t, server, sshfx.NewStatus(1, sshfx.StatusNoSuchFile))

	select {
	case err := <-errCh:
		assert.Equal(t, sshfx.StatusFailure, err)
	case <-time.After(time.Second):
		t.Fatal("handler error was never reported")
	}

	// The failing handler produced no wire traffic back at the server.
	require.NoError(t, server.SetReadDeadline(time.Now().Add(50*time.Millisecond)))

	buf := make([]byte, 1)
	_, err := server.Read(buf)
	nerr, ok := err.(net.Error)
	require.True(t, ok && nerr.Timeout(), "expected a read timeout, got %v", err)
}

func TestClientMalformedResponse(t *testing.T) {
	var handlerErrs []error

	handler := &recordingClientHandler{}
	server, wait := startClient(t, handler, WithHandlerError(func(err error) {
		handlerErrs = append(handlerErrs, err)
	}))

	// A request-type tag is not part of the response set.
	_, err := server.Write([]byte{0x00, 0x00, 0x00, 0x05, 0x03, 0x00, 0x00, 0x00, 0x01})
	require.NoError(t, err)

	// The loop continues: a well-formed response is still dispatched.
	sendRequest(t, server, &sshfx.HandlePacket{RequestID: 1, Handle: "h"})

	wait()

	require.Len(t, handlerErrs, 1)
	assert.Equal(t, []string{"h"}, handler.handles)
}
