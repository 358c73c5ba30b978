package motion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "motion",
})

// Clip is an animation clip, as written by the three.js AnimationClip JSON
// exporter. Converting the original FBX into this format is done elsewhere.
type Clip struct {
	Name     string          `json:"name"`
	Duration float64         `json:"duration"`
	Tracks   []KeyframeTrack `json:"tracks"`
}

// Track returns the track with the given name.
func (c *Clip) Track(name string) (KeyframeTrack, bool) {
	for _, t := range c.Tracks {
		if t.Name == name {
			return t, true
		}
	}

	return KeyframeTrack{}, false
}

// TrackNames returns the name of every track, in clip order.
func (c *Clip) TrackNames() []string {
	names := make([]string, len(c.Tracks))
	for i, t := range c.Tracks {
		names[i] = t.Name
	}

	return names
}

// ReadClip decodes a clip from r.
func ReadClip(r io.Reader) (*Clip, error) {
	c := &Clip{}
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("decoding clip: %w", err)
	}

	return c, nil
}

// LoadClip reads the clip JSON file at path.
func LoadClip(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening clip: %w", err)
	}
	defer f.Close()

	c, err := ReadClip(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded clip %q from %s: duration=%.2fs tracks=%d", c.Name, path, c.Duration, len(c.Tracks))
	return c, nil
}
