package atlas_test

import (
	"archive/zip"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/atlas/atlastest"
)

var red = color.NRGBA{255, 0, 0, 255}

func newCache(t *testing.T, src atlas.Source) *atlas.Cache {
	t.Helper()
	idx, err := atlas.BuildIndex(src)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return atlas.NewCache(idx, src, nil)
}

func TestIndexLookup(t *testing.T) {
	src := atlas.MapSource{
		"big_items/bitem_1.png": atlastest.Solid(2, 2, red),
		"./big_items/b_x.png":   atlastest.Solid(2, 2, red),
	}
	idx, err := atlas.BuildIndex(src)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("Len = %d; want 2", idx.Len())
	}
	if !idx.Has("big_items/bitem_1.png") {
		t.Error("expected bitem_1 to be indexed")
	}
	if !idx.Has(`big_items\b_x.png`) {
		t.Error("backslash name should normalize")
	}
	if got, ok := idx.Lookup("big_items/b_x.png"); !ok || got != "./big_items/b_x.png" {
		t.Errorf("Lookup = %q, %v; want source name", got, ok)
	}
	if idx.Has("big_items/bitem_2.png") {
		t.Error("unexpected entry")
	}
}

func TestCacheResolve(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{
		"a.png": atlastest.Solid(3, 4, red),
	})
	c := newCache(t, src)

	img := c.Resolve("a.png")
	if img == nil {
		t.Fatal("expected image")
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v; want 3x4", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != red {
		t.Errorf("pixel = %v; want %v", got, red)
	}

	if again := c.Resolve("a.png"); again != img {
		t.Error("second Resolve should return the cached image")
	}
	if src.Reads() != 1 {
		t.Errorf("reads = %d; want 1", src.Reads())
	}
}

func TestCacheMissingEntryNotRead(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{})
	c := newCache(t, src)

	if c.Resolve("nope.png") != nil {
		t.Fatal("expected nil for missing entry")
	}
	if src.Reads() != 0 {
		t.Errorf("reads = %d; want 0", src.Reads())
	}
}

func TestCacheCorruptEntryRememberedAsAbsent(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{
		"bad.png": []byte("not an image"),
	})
	c := newCache(t, src)

	for i := 0; i < 3; i++ {
		if c.Resolve("bad.png") != nil {
			t.Fatal("expected nil for corrupt entry")
		}
	}
	if src.Reads() != 1 {
		t.Errorf("reads = %d; want 1", src.Reads())
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d; want 1", c.Len())
	}
}

func TestCacheSingleDecodeUnderConcurrency(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{
		"slow.png": atlastest.Solid(8, 8, red),
	})
	src.Before = func(string) { time.Sleep(20 * time.Millisecond) }
	c := newCache(t, src)

	const n = 64
	results := make([]any, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = c.Resolve("slow.png")
		}(i)
	}
	close(start)
	wg.Wait()

	if src.Reads() != 1 {
		t.Fatalf("reads = %d; want exactly 1", src.Reads())
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("result %d differs from result 0", i)
		}
	}
}

func TestCacheClear(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{
		"a.png": atlastest.Solid(1, 1, red),
		"b.png": atlastest.Solid(1, 1, red),
	})
	c := newCache(t, src)
	c.Resolve("a.png")
	c.Resolve("b.png")

	if n := c.Clear(); n != 2 {
		t.Errorf("Clear = %d; want 2", n)
	}
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d; want 0", c.Len())
	}
	c.Resolve("a.png")
	if src.Reads() != 3 {
		t.Errorf("reads = %d; want 3 (decode again after clear)", src.Reads())
	}
}

func TestMapSourceNotFound(t *testing.T) {
	_, err := atlas.MapSource{}.ReadEntry("x.png")
	if !errors.Is(err, atlas.ErrNotFound) {
		t.Errorf("err = %v; want ErrNotFound", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "big_items")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "bitem_4.png"), atlastest.Solid(2, 2, red), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := atlas.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	names, err := src.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(names) != 1 || names[0] != "big_items/bitem_4.png" {
		t.Fatalf("Entries = %v; want [big_items/bitem_4.png]", names)
	}
	if _, err := src.ReadEntry("big_items/missing.png"); !errors.Is(err, atlas.ErrNotFound) {
		t.Errorf("ReadEntry missing: err = %v; want ErrNotFound", err)
	}
}

func TestOpenZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("big_pokemon_sprites/b_1.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(atlastest.Solid(2, 2, red)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src, err := atlas.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	c := newCache(t, src)
	if c.Resolve("big_pokemon_sprites/b_1.png") == nil {
		t.Fatal("expected zip entry to decode")
	}
}

func TestOpenRejectsPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := atlas.Open(path); err == nil {
		t.Fatal("expected error for non-zip file")
	}
}

func TestDecodeByExtension(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"a.png", atlastest.Solid(3, 2, red), false},
		{"a.PNG", atlastest.Solid(3, 2, red), false},
		{"a.tga", atlastest.SolidTGA(3, 2, red), false},
		{"png-bytes.tga", atlastest.Solid(3, 2, red), true},
		{"a.bmp", atlastest.Solid(3, 2, red), true},
		{"empty.png", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := atlas.Decode(tt.name, tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
				t.Errorf("bounds = %v; want 3x2", b)
			}
			if got := img.NRGBAAt(2, 1); got != red {
				t.Errorf("pixel = %v; want %v", got, red)
			}
		})
	}
}

func TestIndexLookupTGASibling(t *testing.T) {
	src := atlas.MapSource{
		"big_pokemon_sprites/b_1.tga": atlastest.SolidTGA(2, 2, red),
		"big_pokemon_sprites/b_2.png": atlastest.Solid(2, 2, red),
		"big_pokemon_sprites/b_2.tga": atlastest.SolidTGA(2, 2, red),
	}
	idx, err := atlas.BuildIndex(src)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	tests := []struct {
		name, want string
		ok         bool
	}{
		{"big_pokemon_sprites/b_1.png", "big_pokemon_sprites/b_1.tga", true},
		{"big_pokemon_sprites/b_2.png", "big_pokemon_sprites/b_2.png", true},
		{"big_pokemon_sprites/b_1.tga", "big_pokemon_sprites/b_1.tga", true},
		{"big_pokemon_sprites/b_3.png", "", false},
	}
	for _, tt := range tests {
		got, ok := idx.Lookup(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
		if idx.Has(tt.name) != tt.ok {
			t.Errorf("Has(%q) = %v; want %v", tt.name, !tt.ok, tt.ok)
		}
	}

	c := atlas.NewCache(idx, src, nil)
	if img := c.Resolve("big_pokemon_sprites/b_1.png"); img == nil || img.NRGBAAt(1, 1) != red {
		t.Errorf("Resolve via tga sibling = %v", img)
	}
}

func TestCacheClearDuringDecode(t *testing.T) {
	src := atlastest.NewCounting(atlas.MapSource{
		"a.png": atlastest.Solid(1, 1, red),
	})
	c := newCache(t, src)

	cleared := false
	src.Before = func(string) {
		if !cleared {
			cleared = true
			c.Clear()
		}
	}

	if img := c.Resolve("a.png"); img == nil {
		t.Fatal("in-flight decode should still return its image")
	}
	if n := c.Len(); n != 0 {
		t.Errorf("Len = %d; want 0, a decode started before Clear must not be stored", n)
	}

	c.Resolve("a.png")
	c.Resolve("a.png")
	if n := src.Reads(); n != 2 {
		t.Errorf("reads = %d; want 2", n)
	}
	if n := c.Len(); n != 1 {
		t.Errorf("Len = %d; want 1", n)
	}
}
