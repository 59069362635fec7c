package transport

// Source adapts a Client into a byte stream suitable for frame decoding (io.Reader and
// io.ByteReader). The data not consumed yet is held by the Source itself and returned to the
// client by Release.
type Source struct {
	client  Client
	pending []byte
	err     error
}

func NewSource(client Client) *Source {
	return &Source{client: client}
}

func (s *Source) fill() error {
	for len(s.pending) == 0 {
		if s.err != nil {
			return s.err
		}

		// a client may return both data and an error. The error is delayed in this case
		// until the data is drained.
		s.pending, s.err = s.client.Read()
	}

	return nil
}

func (s *Source) ReadByte() (byte, error) {
	if err := s.fill(); err != nil {
		return 0, err
	}

	c := s.pending[0]
	s.pending = s.pending[1:]

	return c, nil
}

func (s *Source) Read(b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}

	if err = s.fill(); err != nil {
		return 0, err
	}

	n = copy(b, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// Release pushes the unconsumed data back into the client. The Source must not be used
// afterwards.
func (s *Source) Release() {
	if len(s.pending) > 0 {
		s.client.Pushback(s.pending)
		s.pending = nil
	}
}
