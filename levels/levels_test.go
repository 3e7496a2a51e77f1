package levels

import (
	"testing"

	"github.com/akmonengine/spherecubed/level"
)

func TestCampaignIsPlayable(t *testing.T) {
	for _, name := range Names(GAME_LEVEL_COUNT) {
		t.Run(name, func(t *testing.T) {
			f, err := FS.Open(name)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()

			l, err := level.Parse(f)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := level.Validate(l); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names(3)
	expected := []string{"level1.txt", "level2.txt", "level3.txt"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("names[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}
}
