package core

import "fmt"

// RenderMode selects the shading policy for a render
type RenderMode int

const (
	// ModeFull enables shadows, specular highlights, reflection and refraction
	ModeFull RenderMode = iota
	// ModePreview shades diffuse only with the wire material, no shadows or recursion
	ModePreview
)

func (m RenderMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModePreview:
		return "preview"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode converts a mode name ("full", "preview") to a RenderMode
func ParseRenderMode(name string) (RenderMode, error) {
	switch name {
	case "full", "render":
		return ModeFull, nil
	case "preview", "view", "wire":
		return ModePreview, nil
	default:
		return ModeFull, fmt.Errorf("unknown render mode: %q", name)
	}
}
