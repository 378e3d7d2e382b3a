//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// WSReadWriteCloser adapts a browser WebSocket to io.ReadWriteCloser.
// Every Write is sent as one binary message; incoming messages are read as
// a continuous stream.
type WSReadWriteCloser struct {
	ws js.Value

	mu     sync.Mutex // needed because js onClose event can preempt Write() call
	closed bool

	readCh chan []byte

	openCh chan struct{} // closed when connected
	err    error

	// read buffer for partial reads
	buf []byte
}

func NewWSReadWriteCloser(ws js.Value) *WSReadWriteCloser {
	c := &WSReadWriteCloser{
		ws:     ws,
		readCh: make(chan []byte, 64),
		openCh: make(chan struct{}),
	}

	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.signalOpen()
		return nil
	}))

	ws.Set("onerror", js.FuncOf(func(js.Value, []js.Value) any {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.err = io.ErrUnexpectedEOF
		c.signalOpen()
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		b := messageBytes(args[0].Get("data"))
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.readCh <- b
		}
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreen("connection closed")
		c.shutdown()
		return nil
	}))

	return c
}

func (c *WSReadWriteCloser) Read(p []byte) (int, error) {
	if len(c.buf) == 0 {
		msg, ok := <-c.readCh
		if !ok {
			return 0, io.EOF
		}
		c.buf = msg
	}

	n := copy(p, c.buf)
	c.buf = c.buf[n:]

	return n, nil
}

func (c *WSReadWriteCloser) Write(p []byte) (int, error) {
	if err := c.waitOpen(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)

	c.ws.Call("send", u8)
	return len(p), nil
}

func (c *WSReadWriteCloser) Close() error {
	if c.shutdown() {
		c.ws.Call("close")
	}
	return nil
}

// shutdown marks the connection closed and reports whether it was open.
func (c *WSReadWriteCloser) shutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.closed = true
	c.signalOpen()
	close(c.readCh)
	return true
}

// signalOpen releases writers waiting for the socket. It may run more than
// once. c.mu must be held.
func (c *WSReadWriteCloser) signalOpen() {
	select {
	case <-c.openCh:
	default:
		close(c.openCh)
	}
}

func (c *WSReadWriteCloser) waitOpen() error {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	if c.closed {
		return io.ErrClosedPipe
	}
	return nil
}

// messageBytes copies the payload of a message event: a string for text
// frames, an ArrayBuffer for binary ones.
func messageBytes(data js.Value) []byte {
	if data.Type() == js.TypeString {
		return []byte(data.String())
	}
	u8 := js.Global().Get("Uint8Array").New(data)
	b := make([]byte, u8.Get("byteLength").Int())
	js.CopyBytesToGo(b, u8)
	return b
}
