// Package render builds the UI descriptors a client renders in place of a
// text answer. Nothing here touches the network.
package render

// Descriptor types.
const (
	TypeRegionSelector  = "region-selector"
	TypeProjectSelector = "project-selector"
	TypeServiceCard     = "service-card"
	TypeDockerfile      = "dockerfile"
	TypeRecommendation  = "recommendation"
	TypeFloatingButton  = "floating-button"
)

const (
	defaultLanguage    = "dockerfile"
	defaultButtonTitle = "Visit Website"
)

type RegionSelectorInput struct {
	ShowServers *bool `json:"showServers" validate:"required"`
}

type RegionSelector struct {
	Type        string `json:"type"`
	ShowServers bool   `json:"showServers"`
}

func NewRegionSelector(in RegionSelectorInput) RegionSelector {
	return RegionSelector{Type: TypeRegionSelector, ShowServers: *in.ShowServers}
}

type ProjectSelectorInput struct {
	ShowCreateNew *bool `json:"showCreateNew" validate:"required"`
}

type ProjectSelector struct {
	Type          string `json:"type"`
	ShowCreateNew bool   `json:"showCreateNew"`
}

func NewProjectSelector(in ProjectSelectorInput) ProjectSelector {
	return ProjectSelector{Type: TypeProjectSelector, ShowCreateNew: *in.ShowCreateNew}
}

type ServiceCardInput struct {
	ProjectID string `json:"projectID" validate:"required"`
	ServiceID string `json:"serviceID" validate:"required"`
}

type ServiceCard struct {
	Type      string `json:"type"`
	ProjectID string `json:"projectID"`
	ServiceID string `json:"serviceID"`
}

func NewServiceCard(in ServiceCardInput) ServiceCard {
	return ServiceCard{Type: TypeServiceCard, ProjectID: in.ProjectID, ServiceID: in.ServiceID}
}

// DockerfileInput carries the Dockerfile text and the highlighting language.
type DockerfileInput struct {
	Dockerfile string `json:"dockerfile" validate:"required"`
	Language   string `json:"language"`
}

func (in *DockerfileInput) Defaults() {
	in.Language = defaultLanguage
}

type Dockerfile struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// NewDockerfile falls back to dockerfile highlighting when Language is
// empty.
func NewDockerfile(in DockerfileInput) Dockerfile {
	lang := in.Language
	if lang == "" {
		lang = defaultLanguage
	}
	return Dockerfile{Type: TypeDockerfile, Content: in.Dockerfile, Language: lang}
}

type Option struct {
	Label string `json:"label" validate:"required"`
}

type RecommendationInput struct {
	Options []Option `json:"options" validate:"required,dive"`
}

type Recommendation struct {
	Type    string   `json:"type"`
	Options []Option `json:"options"`
}

func NewRecommendation(in RecommendationInput) Recommendation {
	return Recommendation{Type: TypeRecommendation, Options: in.Options}
}

// FloatingButtonInput describes a link button. Title falls back to
// "Visit Website" and IsExternal to true.
type FloatingButtonInput struct {
	URL         string `json:"url" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsExternal  bool   `json:"isExternal"`
}

func (in *FloatingButtonInput) Defaults() {
	in.IsExternal = true
}

type FloatingButton struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsExternal  bool   `json:"isExternal"`
}

func NewFloatingButton(in FloatingButtonInput) FloatingButton {
	title := in.Title
	if title == "" {
		title = defaultButtonTitle
	}
	return FloatingButton{
		Type:        TypeFloatingButton,
		URL:         in.URL,
		Title:       title,
		Description: in.Description,
		IsExternal:  in.IsExternal,
	}
}
