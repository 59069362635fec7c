package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/h1frame/transport"
)

var _ transport.Client = new(Client)

// Client returns the same data as it was initialised with on every read, unless set to
// shoot once. It also tracks all the written data, making it thereby a universal mock
// suitable for most of the tests.
type Client struct {
	closed     bool
	once       bool
	journaling bool
	pointer    int
	tmp        []byte
	written    []byte
	writes     int
	data       [][]byte
	err        error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		pointer:    0,
		journaling: true,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if len(c.data) == 0 {
			return nil, io.EOF
		}

		if c.err != nil {
			return nil, c.err
		}

		if c.once {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(p []byte) (int, error) {
	c.writes++

	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Once makes the client return io.EOF as soon as the data is over.
func (c *Client) Once() *Client {
	c.once = true
	return c
}

// FailWith makes the client return the error as soon as the data is over.
func (c *Client) FailWith(err error) *Client {
	c.err = err
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}

// Writes returns how many times Write was called.
func (c *Client) Writes() int {
	return c.writes
}
