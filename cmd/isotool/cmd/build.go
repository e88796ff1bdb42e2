package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idemia/go-iso19794/pkg/config"
	"github.com/idemia/go-iso19794/pkg/face"
	"github.com/idemia/go-iso19794/pkg/finger"
	"github.com/idemia/go-iso19794/pkg/imaging"
)

// buildSpec is the YAML descriptor the build command assembles a container
// from. Payload files must already hold compressed image bytes; all length
// fields and file-level flags are derived.
type buildSpec struct {
	Family  string      `yaml:"family"`  // FIR or FAC
	Version string      `yaml:"version"` // FAC only: 010, 020 or 030
	Frames  []frameSpec `yaml:"frames"`
}

type frameSpec struct {
	Payload         string   `yaml:"payload"`
	CaptureDatetime string   `yaml:"capture_datetime"` // RFC 3339, optional
	Size            []uint16 `yaml:"size"`             // width, height

	// Finger fields
	Position          string   `yaml:"position"`
	Number            uint8    `yaml:"number"`
	ScaleUnits        string   `yaml:"scale_units"`
	ScanSamplingRate  []uint16 `yaml:"scan_sampling_rate"`
	ImageSamplingRate []uint16 `yaml:"image_sampling_rate"`
	BitDepth          uint8    `yaml:"bit_depth"`
	Compression       string   `yaml:"image_compression_algo"`
	Impression        string   `yaml:"impression_type"`

	// Face fields
	Gender          string   `yaml:"gender"`
	EyeColour       string   `yaml:"eye_colour"`
	HairColour      string   `yaml:"hair_colour"`
	Properties      []string `yaml:"property_mask"`
	Expression      string   `yaml:"expression"`
	Pose            []int8   `yaml:"pose"`
	PoseUncertainty []int8   `yaml:"pose_uncertainty"`
	FaceImageType   string   `yaml:"face_image_type"`
	ImageDataType   string   `yaml:"image_data_type"`
	SourceType      string   `yaml:"source_type"`
	Mode            string   `yaml:"mode"`
}

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a container from a YAML descriptor",
	Long: `Assemble a container from a YAML descriptor listing the frames' header
fields and payload files.

Example:
  isotool build -c container.yaml -o scan.fir`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")
		defaultsPath, _ := cmd.Flags().GetString("defaults")
		defaults, err := loadDefaults(defaultsPath)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(specPath)
		if err != nil {
			return err
		}
		var spec buildSpec
		if err := yaml.Unmarshal(raw, &spec); err != nil {
			return fmt.Errorf("parsing %s: %w", specPath, err)
		}
		if len(spec.Frames) == 0 {
			return fmt.Errorf("%s: no frames declared", specPath)
		}

		family := strings.ToUpper(spec.Family)
		if output == "" {
			output = filepath.Join(defaults.OutputDir, ksuid.New().String()+"."+strings.ToLower(family))
		}
		out, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return err
		}
		defer out.Close()

		switch family {
		case "FIR":
			err = buildFinger(out, spec, defaults)
		case "FAC":
			err = buildFace(out, spec, defaults)
		default:
			return fmt.Errorf("unknown family %q (want FIR or FAC)", spec.Family)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", output, len(spec.Frames))
		return nil
	},
}

// loadDefaults returns the tool configuration at path, the per-user file when
// path is empty, or the built-in defaults when neither exists.
func loadDefaults(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	path = config.GetDefaultConfigPath()
	if !config.ConfigExists(path) {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

func buildFinger(out *os.File, spec buildSpec, defaults *config.Config) error {
	frames := make([]finger.SourceFrame, 0, len(spec.Frames))
	for i, fs := range spec.Frames {
		if fs.ScaleUnits == "" {
			fs.ScaleUnits = defaults.Finger.ScaleUnits
		}
		if len(fs.ScanSamplingRate) == 0 {
			fs.ScanSamplingRate = defaults.Finger.ScanSamplingRate
		}
		if len(fs.ImageSamplingRate) == 0 {
			fs.ImageSamplingRate = defaults.Finger.ImageSamplingRate
		}
		if fs.BitDepth == 0 {
			fs.BitDepth = defaults.Finger.BitDepth
		}
		h := finger.Header{Number: fs.Number, BitDepth: fs.BitDepth}
		var err error
		if h.CaptureDatetime, err = parseDatetime(fs.CaptureDatetime); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if fs.Position != "" {
			if h.Position, err = finger.ParsePosition(fs.Position); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.ScaleUnits != "" {
			if h.ScaleUnits, err = finger.ParseScaleUnit(fs.ScaleUnits); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.Compression != "" {
			if h.ImageCompressionAlgo, err = finger.ParseCompression(fs.Compression); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.Impression != "" {
			if h.ImpressionType, err = finger.ParseImpression(fs.Impression); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if len(fs.ScanSamplingRate) == 2 {
			h.HorizontalScanSamplingRate = fs.ScanSamplingRate[0]
			h.VerticalScanSamplingRate = fs.ScanSamplingRate[1]
		}
		if len(fs.ImageSamplingRate) == 2 {
			h.HorizontalImageSamplingRate = fs.ImageSamplingRate[0]
			h.VerticalImageSamplingRate = fs.ImageSamplingRate[1]
		}
		if len(fs.Size) == 2 {
			h.Width, h.Height = fs.Size[0], fs.Size[1]
		}
		payload, err := os.ReadFile(fs.Payload)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, finger.SourceFrame{Header: h, Payload: payload})
	}
	return finger.NewWriter(finger.WriterConfig{}).WriteAll(out, frames)
}

func buildFace(out *os.File, spec buildSpec, defaults *config.Config) error {
	if spec.Version == "" {
		spec.Version = defaults.Face.Version
	}
	frames := make([]face.SourceFrame, 0, len(spec.Frames))
	for i, fs := range spec.Frames {
		h := face.Header{Mode: imaging.Mode(fs.Mode)}
		var err error
		if h.CaptureDatetime, err = parseDatetime(fs.CaptureDatetime); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if fs.Gender != "" {
			if h.Gender, err = face.ParseGender(fs.Gender); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.EyeColour != "" {
			if h.EyeColour, err = face.ParseEyeColour(fs.EyeColour); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.HairColour != "" {
			if h.HairColour, err = face.ParseHairColour(fs.HairColour); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if len(fs.Properties) > 0 {
			if h.Properties, err = face.ParseProperties(fs.Properties); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.Expression != "" {
			if h.Expression, err = face.ParseExpression(fs.Expression); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.FaceImageType != "" {
			if h.FaceImageType, err = face.ParseFaceImageType(fs.FaceImageType); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.ImageDataType != "" {
			if h.ImageDataType, err = face.ParseImageDataType(fs.ImageDataType); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if fs.SourceType != "" {
			if h.SourceType, err = face.ParseSourceType(fs.SourceType); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if len(fs.Pose) == 3 {
			h.PoseYaw, h.PosePitch, h.PoseRoll = fs.Pose[0], fs.Pose[1], fs.Pose[2]
		}
		if len(fs.PoseUncertainty) == 3 {
			h.PoseUncertaintyYaw = fs.PoseUncertainty[0]
			h.PoseUncertaintyPitch = fs.PoseUncertainty[1]
			h.PoseUncertaintyRoll = fs.PoseUncertainty[2]
		}
		if len(fs.Size) == 2 {
			h.Width, h.Height = fs.Size[0], fs.Size[1]
		}
		payload, err := os.ReadFile(fs.Payload)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, face.SourceFrame{Header: h, Payload: payload})
	}
	w, err := face.NewWriter(face.WriterConfig{Version: face.Version(spec.Version)})
	if err != nil {
		return err
	}
	return w.WriteAll(out, frames)
}

func parseDatetime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("capture_datetime: %w", err)
	}
	return t, nil
}

func init() {
	buildCmd.Flags().StringP("config", "c", "container.yaml", "YAML descriptor for the container")
	buildCmd.Flags().StringP("output", "o", "", "Output file (default: generated name with the family extension)")
	buildCmd.Flags().String("defaults", "", "Tool configuration file (default: the per-user location)")
	rootCmd.AddCommand(buildCmd)
}
