package imaging

import (
	"fmt"
	"sync"
)

// Codec converts between a frame's compressed payload bytes and raw
// interleaved pixel bytes of a given mode and size. Implementations for
// compressed formats (JPEG, JPEG2000, WSQ) are external collaborators; the
// package ships passthrough raw and a baseline JPEG shim.
type Codec interface {
	Decode(payload []byte, mode Mode, width, height int) ([]byte, error)
	Encode(pixels []byte, mode Mode, width, height int) ([]byte, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Codec)
)

// Register installs a codec under a compression name, replacing any previous
// registration. Names follow the header enumerations ("RAW", "JPEG", ...).
func Register(name string, c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = c
}

// Lookup returns the codec registered for a compression name.
func Lookup(name string) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// rawCodec passes pixel bytes through unchanged, verifying the size implied by
// mode and dimensions.
type rawCodec struct{}

func (rawCodec) Decode(payload []byte, mode Mode, width, height int) ([]byte, error) {
	if err := checkSize(len(payload), mode, width, height); err != nil {
		return nil, err
	}
	return payload, nil
}

func (rawCodec) Encode(pixels []byte, mode Mode, width, height int) ([]byte, error) {
	if err := checkSize(len(pixels), mode, width, height); err != nil {
		return nil, err
	}
	return pixels, nil
}

func checkSize(got int, mode Mode, width, height int) error {
	want := width * height * mode.Channels()
	if got != want {
		return fmt.Errorf("imaging: %dx%d %s needs %d bytes, have %d", width, height, mode, want, got)
	}
	return nil
}

func init() {
	Register("RAW", rawCodec{})
	Register("RAW_PACKED", rawCodec{})
}
