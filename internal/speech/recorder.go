package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// SoxRecorder captures fixed-duration clips by running the sox binary against
// the selected capture device. Output is raw mono 16 kHz 16-bit PCM.
type SoxRecorder struct {
	soxPath string
	device  string
	seconds int
	log     *zap.Logger
}

// NewSoxRecorder builds a recorder. When no device is configured it attempts
// to enumerate capture devices; enumeration failure degrades to the default
// device with a logged warning rather than failing.
func NewSoxRecorder(soxPath, device string, seconds int, log *zap.Logger) *SoxRecorder {
	if device == "" {
		found, err := listCaptureDevices()
		switch {
		case err != nil:
			log.Warn("failed to list capture devices, falling back to default device", zap.Error(err))
		case len(found) == 0:
			log.Warn("no capture devices found, falling back to default device")
		default:
			device = found[0]
			log.Info("using capture device", zap.String("device", device))
		}
	}
	return &SoxRecorder{soxPath: soxPath, device: device, seconds: seconds, log: log}
}

// Record captures one clip of the configured duration and returns its PCM.
func (r *SoxRecorder) Record(ctx context.Context) ([]byte, error) {
	out, err := os.CreateTemp("", "clip-*.raw")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp recording file: %w", err)
	}
	outPath := out.Name()
	_ = out.Close()
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, r.soxPath, recordArgs(outPath, r.seconds)...)
	if r.device != "" {
		cmd.Env = append(os.Environ(), "AUDIODEV="+r.device)
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("recording failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	pcm, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	r.log.Debug("captured clip", zap.Int("bytes", len(pcm)), zap.Int("seconds", r.seconds))
	return pcm, nil
}

// recordArgs builds the sox argument list for one fixed-duration capture.
func recordArgs(outPath string, seconds int) []string {
	return []string{
		"-q",
		"-d", // default (or AUDIODEV-selected) capture device
		"-t", "raw",
		"-r", strconv.Itoa(SampleRate),
		"-e", "signed",
		"-b", strconv.Itoa(BitDepth),
		"-c", strconv.Itoa(Channels),
		outPath,
		"trim", "0", strconv.Itoa(seconds),
		"gain", "10",
	}
}

var alsaCard = regexp.MustCompile(`^card (\d+):.*device (\d+):`)

// listCaptureDevices asks ALSA for capture hardware, returning hw:card,device
// names. Any failure is reported to the caller, which falls back to the
// default device.
func listCaptureDevices() ([]string, error) {
	out, err := exec.Command("arecord", "-l").Output()
	if err != nil {
		return nil, err
	}
	return parseCaptureDevices(string(out)), nil
}

func parseCaptureDevices(listing string) []string {
	var devices []string
	for _, line := range strings.Split(listing, "\n") {
		if m := alsaCard.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			devices = append(devices, fmt.Sprintf("hw:%s,%s", m[1], m[2]))
		}
	}
	return devices
}
