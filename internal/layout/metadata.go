package layout

import "log/slog"

const (
	DefaultTitle       = "Max Burleigh Portfolio - Official Website"
	DefaultDescription = "The official portfolio website of Max Burleigh – web developer, project manager, and solopreneur based in Medford, Oregon. Explore projects, skills, and contact information."
)

// Metadata is the head-level information attached to every page.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func DefaultMetadata() Metadata {
	return Metadata{
		Title:       DefaultTitle,
		Description: DefaultDescription,
	}
}

func (m Metadata) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("title", m.Title),
		slog.Int("description_length", len(m.Description)),
	)
}
