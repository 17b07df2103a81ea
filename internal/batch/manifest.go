package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one roster entry in the output manifest.
type ManifestEntry struct {
	Name         string `json:"name"`
	Species      int    `json:"species"`
	Form         uint8  `json:"form"`
	FormArgument uint32 `json:"form_argument,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Shiny        bool   `json:"shiny"`
	Egg          bool   `json:"egg"`
	HeldItem     int    `json:"held_item,omitempty"`
	Kind         string `json:"kind"`
	Base         string `json:"base,omitempty"`
	Image        string `json:"image,omitempty"`
	Error        string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every result.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := r.Entry
		entries[i] = ManifestEntry{
			Name:         e.Name,
			Species:      e.Species,
			Form:         e.Form,
			FormArgument: e.FormArgument,
			Gender:       e.Gender,
			Shiny:        e.Shiny,
			Egg:          e.Egg,
			HeldItem:     e.HeldItem,
			Kind:         r.Kind,
			Base:         r.Base,
			Error:        r.Error,
		}
		if r.Success {
			entries[i].Image = r.Image
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest reads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
