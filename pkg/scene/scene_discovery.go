package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileScenePrefix marks scene IDs that refer to JSON files
const fileScenePrefix = "file:"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Resolve
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"`
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// ListFileScenes scans dir for *.json scene files. A missing directory is not an error.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		scenes = append(scenes, fileSceneInfo(path))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// fileSceneInfo builds metadata for a scene file, falling back to the
// file name when the description cannot be read
func fileSceneInfo(path string) SceneInfo {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:          fileScenePrefix + name,
		DisplayName: titleCase(name),
		Group:       "Scene Files",
		Type:        "file",
		FilePath:    path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return info
	}
	var header struct {
		Description string `json:"description"`
	}
	if json.Unmarshal(data, &header) == nil {
		info.Description = header.Description
	}
	return info
}

// ListAllScenes returns both built-in and file scenes, built-ins first
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	builtIn := make([]SceneInfo, 0, len(builtins))
	for _, name := range BuiltinNames() {
		builtIn = append(builtIn, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtins[name].description,
			Group:       "Built-in Scenes",
			Type:        "builtin",
		})
	}
	response.Groups = append(response.Groups, SceneGroup{Name: "Built-in Scenes", Scenes: builtIn})

	files, err := ListFileScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	if len(files) > 0 {
		response.Groups = append(response.Groups, SceneGroup{Name: "Scene Files", Scenes: files})
	}

	return response, nil
}

// Resolve creates the scene for an ID returned by ListAllScenes: either a
// built-in name or "file:<name>" for <dir>/<name>.json
func Resolve(id, dir string) (*Scene, error) {
	name, isFile := strings.CutPrefix(id, fileScenePrefix)
	if !isFile {
		return Builtin(id)
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return Load(path)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
