package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientTrySendAfterClose(t *testing.T) {
	c := &Client{playerID: "p1", send: make(chan []byte, 1)}
	c.Close()

	assert.NotPanics(t, func() { c.trySend([]byte(`{}`)) })
}

func TestClientCloseIsIdempotent(t *testing.T) {
	c := &Client{playerID: "p1", send: make(chan []byte, 1)}

	assert.NotPanics(t, func() {
		c.Close()
		c.Close()
	})
}

func TestClientTrySendDropsWhenBufferFull(t *testing.T) {
	c := &Client{playerID: "p1", send: make(chan []byte, 1)}
	c.trySend([]byte(`{"type":"a"}`))

	// The buffer holds one message, the second is dropped instead of
	// blocking the hub.
	c.trySend([]byte(`{"type":"b"}`))

	assert.Len(t, c.send, 1)
	assert.Equal(t, []byte(`{"type":"a"}`), <-c.send)
}
