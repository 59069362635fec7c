package transport_test

import (
	"errors"
	"io"
	"testing"

	"github.com/indigo-web/h1frame/transport"
	"github.com/indigo-web/h1frame/transport/dummy"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	t.Run("bytes across chunks", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("He"), []byte(""), []byte("llo")).Once()
		src := transport.NewSource(client)

		var got []byte
		for {
			c, err := src.ReadByte()
			if err == io.EOF {
				break
			}

			require.NoError(t, err)
			got = append(got, c)
		}

		require.Equal(t, "Hello", string(got))
	})

	t.Run("read all", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("Hello, "), []byte("world!")).Once()
		data, err := io.ReadAll(transport.NewSource(client))
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(data))
	})

	t.Run("release", func(t *testing.T) {
		client := dummy.NewMockClient([]byte("Hello")).Once()
		src := transport.NewSource(client)
		c, err := src.ReadByte()
		require.NoError(t, err)
		require.Equal(t, byte('H'), c)
		src.Release()

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "ello", string(data))
	})

	t.Run("error is delayed", func(t *testing.T) {
		failure := errors.New("connection reset")
		client := dummy.NewMockClient([]byte("ab")).FailWith(failure)
		src := transport.NewSource(client)

		buff := make([]byte, 10)
		n, err := src.Read(buff)
		require.NoError(t, err)
		require.Equal(t, "ab", string(buff[:n]))

		_, err = src.Read(buff)
		require.ErrorIs(t, err, failure)
		_, err = src.ReadByte()
		require.ErrorIs(t, err, failure)
	})
}
