package main

import (
	"fmt"

	"github.com/theflywheel/dhash"
)

func main() {
	t := dhash.New()
	defer t.Destroy()

	// Insert a pair and read it back.
	t.Insert("chien", "dog")

	if value, ok := t.Search("chien"); ok {
		fmt.Printf("Key = 'chien', Value = %s\n", value)
	}

	// Load up a few more translations.
	words := map[string]string{
		"chat":    "cat",
		"cheval":  "horse",
		"oiseau":  "bird",
		"poisson": "fish",
	}
	for fr, en := range words {
		t.Insert(fr, en)
	}
	fmt.Printf("Table holds %d entries\n", t.Len())

	// Overwrite an existing key.
	t.Insert("chat", "cat (felis catus)")
	if value, ok := t.Search("chat"); ok {
		fmt.Printf("Updated 'chat' => %s\n", value)
	}

	// Delete a key and verify it is gone.
	t.Delete("chien")
	if _, ok := t.Search("chien"); !ok {
		fmt.Println("Key 'chien' deleted")
	}

	fmt.Printf("Table holds %d entries\n", t.Len())
	fmt.Println("Example completed successfully")
}
