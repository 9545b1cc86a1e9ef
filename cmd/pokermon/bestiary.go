package main

import (
	"fmt"

	"github.com/Gameaday/pokermon/internal/display"
	"github.com/Gameaday/pokermon/internal/monster"
)

// BestiaryCmd prints the species roster, or one species as a spawned card
type BestiaryCmd struct {
	Name  string `kong:"help='Show a single species as a spawned card'"`
	Level int    `kong:"default='5',help='Level for the spawned card'"`
}

func (c *BestiaryCmd) Run() error {
	db, err := monster.Load()
	if err != nil {
		return err
	}

	if c.Name != "" {
		m, err := db.Spawn(c.Name, c.Level)
		if err != nil {
			return err
		}
		fmt.Println(display.MonsterCard(m))
		return nil
	}

	fmt.Println(display.BestiaryTable(db.All()))
	return nil
}
