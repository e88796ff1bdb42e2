package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idemia/go-iso19794/pkg/face"
	"github.com/idemia/go-iso19794/pkg/finger"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump a container's general and representation headers",
	Long: `Dump a container's general header and every representation header as YAML.

Example:
  isotool inspect scan.fir`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		family, err := detectFamily(f)
		if err != nil {
			return err
		}

		var doc any
		switch family {
		case "FIR":
			doc, err = inspectFinger(f)
		case "FAC":
			doc, err = inspectFace(f)
		}
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(out)
		return nil
	},
}

func inspectFinger(f *os.File) (any, error) {
	r, err := finger.NewReader(f, finger.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	g := r.General()
	doc := map[string]any{
		"family":             "FIR",
		"version":            "020",
		"length":             g.Length,
		"frames":             g.FrameCount,
		"certification_flag": g.CertificationFlag,
		"positions":          g.PositionCount,
	}
	var frames []map[string]any
	for i := 0; i < r.NumFrames(); i++ {
		fr, err := r.Frame(i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, fingerHeaderView(fr, r))
	}
	doc["representations"] = frames
	return doc, nil
}

func fingerHeaderView(fr *finger.Frame, r *finger.Reader) map[string]any {
	h := fr.Header
	format, err := r.PayloadFormat(fr)
	if err != nil {
		format = fmt.Sprintf("unreadable (%v)", err)
	}
	return map[string]any{
		"index":                   fr.Index,
		"length":                  fr.Length,
		"payload_offset":          fr.PayloadOffset(),
		"payload_length":          fr.PayloadLength(),
		"payload_format":          format,
		"capture_datetime":        h.CaptureDatetime,
		"position":                h.Position.String(),
		"number":                  h.Number,
		"scale_units":             h.ScaleUnits.String(),
		"scan_sampling_rate":      []uint16{h.HorizontalScanSamplingRate, h.VerticalScanSamplingRate},
		"image_sampling_rate":     []uint16{h.HorizontalImageSamplingRate, h.VerticalImageSamplingRate},
		"bit_depth":               h.BitDepth,
		"image_compression_algo":  h.ImageCompressionAlgo.String(),
		"impression_type":         h.ImpressionType.String(),
		"size":                    []uint16{h.Width, h.Height},
		"quality_records":         len(h.QualityRecords),
		"certification_records":   len(h.CertificationRecords),
	}
}

func inspectFace(f *os.File) (any, error) {
	r, err := face.NewReader(f, face.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	g := r.General()
	doc := map[string]any{
		"family":  "FAC",
		"version": string(g.Version),
		"length":  g.Length,
		"frames":  g.FrameCount,
	}
	if g.Version != face.V010 {
		doc["certification_flag"] = g.CertificationFlag
		doc["temporal_semantics"] = g.TemporalSemantics
	}
	var frames []map[string]any
	for i := 0; i < r.NumFrames(); i++ {
		fr, err := r.Frame(i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, faceHeaderView(fr, r))
	}
	doc["representations"] = frames
	return doc, nil
}

func faceHeaderView(fr *face.Frame, r *face.Reader) map[string]any {
	h := fr.Header
	format, err := r.PayloadFormat(fr)
	if err != nil {
		format = fmt.Sprintf("unreadable (%v)", err)
	}
	return map[string]any{
		"index":            fr.Index,
		"length":           fr.Length,
		"payload_offset":   fr.PayloadOffset(),
		"payload_length":   fr.PayloadLength(),
		"payload_format":   format,
		"capture_datetime": h.CaptureDatetime,
		"gender":           h.Gender.String(),
		"eye_colour":       h.EyeColour.String(),
		"hair_colour":      h.HairColour.String(),
		"property_mask":    h.Properties.Names(),
		"expression":       h.Expression.String(),
		"pose":             []int8{h.PoseYaw, h.PosePitch, h.PoseRoll},
		"pose_uncertainty": []int8{h.PoseUncertaintyYaw, h.PoseUncertaintyPitch, h.PoseUncertaintyRoll},
		"face_image_type":  h.FaceImageType.String(),
		"image_data_type":  h.ImageDataType.String(),
		"source_type":      h.SourceType.String(),
		"size":             []uint16{h.Width, h.Height},
		"mode":             string(h.Mode),
		"landmark_points":  len(h.LandmarkPoints),
		"quality_records":  len(h.QualityRecords),
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
