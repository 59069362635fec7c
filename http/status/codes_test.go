package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test(t *testing.T) {
	t.Run("registry is consistent", func(t *testing.T) {
		codes := KnownCodes()
		require.Len(t, codes, 16)

		for _, code := range codes {
			sc, found := Lookup(code)
			require.True(t, found, code)
			require.Equal(t, code, sc.Code)
			require.NotEmpty(t, sc.Reason)
			require.Equal(t, Text(code), sc.Reason)
			require.Equal(t, sc, Of(code))
		}
	})

	t.Run("pairs", func(t *testing.T) {
		require.Equal(t, StatusCode{Code: 200, Reason: "OK"}, Of(OK))
		require.Equal(t, StatusCode{Code: 307, Reason: "Temporary Redirect"}, Of(TemporaryRedirect))
		require.Equal(t, StatusCode{Code: 503, Reason: "Service Unavailable"}, Of(ServiceUnavailable))
	})

	t.Run("registry can't be altered", func(t *testing.T) {
		codes := KnownCodes()
		codes[0] = 999

		require.Equal(t, OK, KnownCodes()[0])
		sc, found := Lookup(KnownCodes()[0])
		require.True(t, found)
		require.Equal(t, Status("OK"), sc.Reason)
	})

	t.Run("unregistered", func(t *testing.T) {
		_, found := Lookup(418)
		require.False(t, found)
		require.Empty(t, Text(418))
		require.Empty(t, Of(418).Reason)

		teapot := New(418, "I'm a teapot")
		require.Equal(t, Code(418), teapot.Code)
		require.Equal(t, Status("I'm a teapot"), teapot.Reason)
	})
}
