package speech

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevenLabsFrameEncoding(t *testing.T) {
	opening := elevenLabsFrame{
		Text:          " ",
		VoiceSettings: &voiceSettings{Stability: 0.5, SimilarityBoost: 0.8},
	}
	b, err := json.Marshal(opening)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":" ","voice_settings":{"stability":0.5,"similarity_boost":0.8}}`, string(b))

	// The closing frame carries no voice settings.
	b, err = json.Marshal(elevenLabsFrame{Text: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":""}`, string(b))
}

func TestElevenLabsAudioDecoding(t *testing.T) {
	var msg elevenLabsAudio
	require.NoError(t, json.Unmarshal([]byte(`{"audio":"UENN","isFinal":false}`), &msg))
	assert.Equal(t, "UENN", msg.Audio)
	assert.False(t, msg.IsFinal)

	require.NoError(t, json.Unmarshal([]byte(`{"isFinal":true}`), &msg))
	assert.True(t, msg.IsFinal)
}
