package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/internal/ai"
	"github.com/Gameaday/pokermon/internal/display"
)

// PresetsCmd prints the personality roster with trait values and ratings
type PresetsCmd struct{}

func (c *PresetsCmd) Run() error {
	fmt.Println(display.PresetTable(ai.Presets()))
	return nil
}
