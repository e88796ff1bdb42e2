package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idemia/go-iso19794/pkg/face"
	"github.com/idemia/go-iso19794/pkg/finger"
)

func stubClock() time.Time {
	return time.Date(2019, 6, 21, 14, 30, 5, 0, time.UTC)
}

func writeFingerFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.fir")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := finger.NewWriter(finger.WriterConfig{Now: stubClock})
	err = w.Write(f, finger.SourceFrame{
		Header: finger.Header{
			Position:       finger.RightIndexFinger,
			ImpressionType: finger.LivescanPlain,
			Width:          8,
			Height:         8,
		},
		Payload: make([]byte, 64),
	})
	require.NoError(t, err)
	return path
}

func writeFaceFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portrait.fac")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := face.NewWriter(face.WriterConfig{Version: face.V030, Now: stubClock})
	require.NoError(t, err)
	err = w.Write(f, face.SourceFrame{
		Header: face.Header{
			Gender:        face.GenderFemale,
			Properties:    face.PropertyGlasses,
			FaceImageType: face.TypeFullFrontal,
			ImageDataType: face.DataJPEG,
			Width:         8,
			Height:        8,
		},
		Payload: []byte{0xFF, 0xD8, 0xFF, 0xE0},
	})
	require.NoError(t, err)
	return path
}

func TestDetectFamily(t *testing.T) {
	for _, tc := range []struct {
		path   string
		family string
	}{
		{writeFingerFixture(t), "FIR"},
		{writeFaceFixture(t), "FAC"},
	} {
		f, err := os.Open(tc.path)
		require.NoError(t, err)
		family, err := detectFamily(f)
		require.NoError(t, err)
		assert.Equal(t, tc.family, family)

		// The detector must leave the file positioned at the start.
		pos, err := f.Seek(0, 1)
		require.NoError(t, err)
		assert.Zero(t, pos)
		f.Close()
	}
}

func TestDetectFamily_Foreign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = detectFamily(f)
	assert.Error(t, err)
}

func TestInspectFinger(t *testing.T) {
	f, err := os.Open(writeFingerFixture(t))
	require.NoError(t, err)
	defer f.Close()

	doc, err := inspectFinger(f)
	require.NoError(t, err)
	view, ok := doc.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "FIR", view["family"])
	assert.Equal(t, uint16(1), view["frames"])
	frames, ok := view["representations"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, frames, 1)
	assert.Equal(t, "RIGHT_INDEX_FINGER", frames[0]["position"])
	assert.Equal(t, "RAW", frames[0]["payload_format"])
	assert.Equal(t, "PPI", frames[0]["scale_units"])
	assert.Equal(t, []uint16{8, 8}, frames[0]["size"])
}

func TestInspectFace(t *testing.T) {
	f, err := os.Open(writeFaceFixture(t))
	require.NoError(t, err)
	defer f.Close()

	doc, err := inspectFace(f)
	require.NoError(t, err)
	view, ok := doc.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "FAC", view["family"])
	assert.Equal(t, "030", view["version"])
	assert.Equal(t, uint16(0), view["temporal_semantics"])
	frames, ok := view["representations"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, frames, 1)
	assert.Equal(t, "F", frames[0]["gender"])
	assert.Equal(t, []string{"GLASSES"}, frames[0]["property_mask"])
	assert.Equal(t, "JPEG", frames[0]["payload_format"])
	assert.Equal(t, "RGB", frames[0]["mode"])
}
