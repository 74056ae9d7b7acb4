package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// SoxPlayer renders raw PCM through the sox binary to the default output
// device. Play blocks until sox exits.
type SoxPlayer struct {
	soxPath string
}

// NewSoxPlayer returns a player using the given sox binary.
func NewSoxPlayer(soxPath string) *SoxPlayer {
	return &SoxPlayer{soxPath: soxPath}
}

// Play writes the clip to sox over stdin and waits for playback to finish.
func (p *SoxPlayer) Play(ctx context.Context, pcm []byte) error {
	cmd := exec.CommandContext(ctx, p.soxPath, playArgs()...)
	cmd.Stdin = bytes.NewReader(pcm)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("playback failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func playArgs() []string {
	return []string{
		"-q",
		"-t", "raw",
		"-r", strconv.Itoa(SampleRate),
		"-e", "signed",
		"-b", strconv.Itoa(BitDepth),
		"-c", strconv.Itoa(Channels),
		"-", // read PCM from stdin
		"-d",
	}
}
