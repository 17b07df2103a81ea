package naming

import (
	"testing"

	"sprite-renderer/internal/species"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		species uint16
		form    uint8
		gender  species.Gender
		formArg uint32
		ctx     species.Context
		want    string
	}{
		{"plain species", 1, 0, species.Male, 0, species.Gen7, "_1"},
		{"form suffix", 6, 2, species.Male, 0, species.Gen7, "_6-2"},
		{"pikachu starter", species.Pikachu, 8, species.Male, 0, species.Gen7, "_25-8p"},
		{"pikachu cosplay in gen6", species.Pikachu, 3, species.Female, 0, species.Gen6, "_25-3c"},
		{"pikachu cosplay wins over starter", species.Pikachu, 8, species.Male, 0, species.Gen6, "_25-8c"},
		{"pikachu other form", species.Pikachu, 2, species.Male, 0, species.Gen7, "_25-2"},
		{"pikachu base form in gen6", species.Pikachu, 0, species.Male, 0, species.Gen6, "_25"},
		{"eevee starter", species.Eevee, 1, species.Male, 0, species.Gen7b, "_133-1p"},
		{"eevee starter ignores context", species.Eevee, 1, species.Male, 0, species.Gen6, "_133-1p"},
		{"alcremie base form", species.Alcremie, 0, species.Female, 3, species.Gen8, "_869-0-3"},
		{"alcremie form", species.Alcremie, 4, species.Female, 6, species.Gen8, "_869-4-6"},
		{"default form forced", species.Mimikyu, 1, species.Male, 0, species.Gen7, "_778"},
		{"default form forced urshifu", species.Urshifu, 1, species.Female, 0, species.Gen8, "_892"},
		{"gendered female", species.Pyroar, 0, species.Female, 0, species.Gen6, "_668f"},
		{"gendered male", species.Pyroar, 0, species.Male, 0, species.Gen6, "_668"},
		{"gendered genderless", species.Jellicent, 0, species.Genderless, 0, species.Gen5, "_593"},
		{"female without gendered art", 3, 0, species.Female, 0, species.Gen5, "_3"},
		{"form arg ignored elsewhere", 1, 0, species.Male, 9, species.Gen5, "_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.species, tt.form, tt.gender, tt.formArg, tt.ctx)
			if got != tt.want {
				t.Errorf("Name() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNameDeterministic(t *testing.T) {
	for s := uint16(0); s < 1100; s += 7 {
		for form := uint8(0); form < 10; form++ {
			a := Name(s, form, species.Female, uint32(form), species.Gen6)
			b := Name(s, form, species.Female, uint32(form), species.Gen6)
			if a != b {
				t.Fatalf("Name(%d, %d) not deterministic: %q vs %q", s, form, a, b)
			}
		}
	}
}

func TestIdentityKeyIgnoresShiny(t *testing.T) {
	id := Identity{Species: species.Pikachu, Form: 8, Context: species.Gen7}
	shiny := id
	shiny.Shiny = true

	if id.Key() != shiny.Key() {
		t.Errorf("Key differs by shiny flag: %q vs %q", id.Key(), shiny.Key())
	}
	if id.Folder() == shiny.Folder() {
		t.Errorf("Folder should differ by shiny flag, both %q", id.Folder())
	}
	if got, want := Path(id.Folder(), id.Key()), "big_pokemon_sprites/b_25-8p.png"; got != want {
		t.Errorf("Path = %q; want %q", got, want)
	}
}

func TestItemPath(t *testing.T) {
	if got := ItemPath(0); got != "" {
		t.Errorf("ItemPath(0) = %q; want empty", got)
	}
	if got := ItemPath(-5); got != "" {
		t.Errorf("ItemPath(-5) = %q; want empty", got)
	}
	if got, want := ItemPath(17), "big_items/bitem_17.png"; got != want {
		t.Errorf("ItemPath(17) = %q; want %q", got, want)
	}
}

func TestEggPathFor(t *testing.T) {
	if got := EggPathFor(species.Manaphy); got != ManaphyEggPath {
		t.Errorf("EggPathFor(Manaphy) = %q; want %q", got, ManaphyEggPath)
	}
	if got := EggPathFor(1); got != EggPath {
		t.Errorf("EggPathFor(1) = %q; want %q", got, EggPath)
	}
}

func TestSpeciesOnlyPath(t *testing.T) {
	if got, want := SpeciesOnlyPath(869), "big_pokemon_sprites/b_869.png"; got != want {
		t.Errorf("SpeciesOnlyPath = %q; want %q", got, want)
	}
}
