// Command spritename prints the atlas names tried for one creature and,
// given an atlas, which of them exists.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/fallback"
	"sprite-renderer/internal/naming"
	"sprite-renderer/internal/species"
)

func main() {
	speciesID := flag.Int("species", 0, "Species number")
	form := flag.Uint("form", 0, "Form id")
	gender := flag.String("gender", "male", "male, female or genderless")
	formArg := flag.Uint("formarg", 0, "Form argument")
	shiny := flag.Bool("shiny", false, "Shiny art")
	generation := flag.String("context", "gen9", "Generation context")
	atlasPath := flag.String("atlas", "", "Atlas directory or .zip to check candidates against")
	flag.Parse()

	if *speciesID <= 0 || *speciesID > math.MaxUint16 {
		fmt.Fprintf(os.Stderr, "Error: species must be 1-%d\n", math.MaxUint16)
		os.Exit(2)
	}
	if *form > math.MaxUint8 || *formArg > math.MaxUint32 {
		fmt.Fprintln(os.Stderr, "Error: form or form argument out of range")
		os.Exit(2)
	}
	g, err := species.ParseGender(*gender)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	ctx, err := species.ParseContext(*generation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	id := naming.Identity{
		Species:      uint16(*speciesID),
		Form:         uint8(*form),
		Gender:       g,
		FormArgument: uint32(*formArg),
		Shiny:        *shiny,
		Context:      ctx,
	}

	fmt.Printf("Name:    %s\n", id.Key())
	fmt.Printf("Entry:   %s\n", naming.Path(id.Folder(), id.Key()))

	var idx *atlas.Index
	if *atlasPath != "" {
		src, err := atlas.Open(*atlasPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening atlas: %v\n", err)
			os.Exit(1)
		}
		defer src.Close()
		idx, err = atlas.BuildIndex(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error indexing atlas: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Candidates:")
	hit := ""
	for i, name := range fallback.Candidates(id) {
		mark := ""
		if idx != nil {
			mark = "  missing"
			if idx.Has(name) {
				mark = "  present"
				if hit == "" {
					hit = name
				}
			}
		}
		fmt.Printf("  %d. %s%s\n", i+1, name, mark)
	}

	if idx == nil {
		return
	}
	if hit == "" {
		fmt.Println("Resolves to: placeholder")
		return
	}
	fmt.Printf("Resolves to: %s\n", hit)
}
