// Package project handles persistence of scenes, preferences and backups
// as JSON files on disk.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"roomsketch/internal/model"

	"github.com/google/uuid"
)

// SceneStore loads and saves the whole scene at a fixed path. It is an
// explicit value injected into the application rather than a globally
// addressed storage key, so tests and tools can point it anywhere.
type SceneStore struct {
	Path string
}

// DefaultScenePath returns the default scene file location,
// ~/.roomsketch/scene.json.
func DefaultScenePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".roomsketch", "scene.json"), nil
}

// NewSceneStore creates a store for the given path. An empty path selects
// the default location.
func NewSceneStore(path string) (SceneStore, error) {
	if path == "" {
		p, err := DefaultScenePath()
		if err != nil {
			return SceneStore{}, err
		}
		path = p
	}
	return SceneStore{Path: path}, nil
}

// Load reads the scene from disk. A missing file yields a fresh scene with
// the default library rather than an error.
func (s SceneStore) Load() (model.Scene, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewScene(), nil
		}
		return model.Scene{}, err
	}
	var scene model.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return model.Scene{}, err
	}
	return scene, nil
}

// Save writes the scene to disk, creating parent directories as needed.
func (s SceneStore) Save(scene model.Scene) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

// roomExport is the single-room interchange layout: the room plus the
// library definitions it may reference.
type roomExport struct {
	Room    model.Room               `json:"room"`
	Library []model.ObjectDefinition `json:"library"`
}

// ExportRoom writes one room and the library to a JSON file for sharing.
func ExportRoom(path string, room model.Room, library model.Library) error {
	data, err := json.MarshalIndent(roomExport{Room: room, Library: library}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportRoom reads a room interchange file. The room gets a freshly
// generated ID so it can coexist with the room it was exported from; the
// returned definitions are the file's library, which the caller merges
// into the scene library (unknown IDs only).
func ImportRoom(path string) (model.Room, []model.ObjectDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Room{}, nil, err
	}
	var exp roomExport
	if err := json.Unmarshal(data, &exp); err != nil {
		return model.Room{}, nil, err
	}
	exp.Room.ID = uuid.New().String()[:8]
	return exp.Room, exp.Library, nil
}
