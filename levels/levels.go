// Package levels embeds the default campaign.
package levels

import (
	"embed"
	"fmt"
)

// GAME_LEVEL_COUNT is the number of levels of the embedded campaign
const GAME_LEVEL_COUNT = 8

//go:embed *.txt
var FS embed.FS

// Names returns level1.txt to level<count>.txt, in campaign order
func Names(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("level%d.txt", i+1)
	}
	return names
}
