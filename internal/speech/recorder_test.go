package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordArgs(t *testing.T) {
	args := recordArgs("/tmp/clip.raw", 5)

	assert.Contains(t, args, "-d")
	assert.Contains(t, args, "/tmp/clip.raw")
	// Mono 16 kHz 16-bit, five second window.
	assert.Subset(t, args, []string{"-r", "16000", "-c", "1", "-b", "16"})
	assert.Subset(t, args, []string{"trim", "0", "5"})
}

func TestPlayArgs(t *testing.T) {
	args := playArgs()

	assert.Equal(t, "-", args[len(args)-2])
	assert.Equal(t, "-d", args[len(args)-1])
	assert.Subset(t, args, []string{"-r", "16000", "-e", "signed"})
}

func TestParseCaptureDevices(t *testing.T) {
	listing := `**** List of CAPTURE Hardware Devices ****
card 0: PCH [HDA Intel PCH], device 0: ALC3246 Analog [ALC3246 Analog]
  Subdevices: 1/1
card 1: Headset [USB Headset], device 0: USB Audio [USB Audio]
`
	devices := parseCaptureDevices(listing)
	assert.Equal(t, []string{"hw:0,0", "hw:1,0"}, devices)
}

func TestParseCaptureDevicesEmpty(t *testing.T) {
	assert.Empty(t, parseCaptureDevices("no soundcards found..."))
}
